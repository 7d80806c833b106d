package hiringrequestapimodels

import (
	"time"

	"github.com/pkg/errors"

	"recruit-track-backend/models"
	userapimodels "recruit-track-backend/models/api/user"
)

type HiringRequestData struct {
	JobTitle      string `json:"job_title"`
	Service       string `json:"service"`
	WorkLocation  string `json:"work_location"`
	ContractType  string `json:"contract_type"`
	Justification string `json:"justification"`
	HeadCount     int    `json:"head_count"`
	RecruiterID   string `json:"recruiter_id"`
	Status        models.RequestStatus `json:"status"`
}

func (d HiringRequestData) Validate() error {
	if d.JobTitle == "" {
		return errors.New("job title is required")
	}
	if d.Status != "" && !d.Status.IsValid() {
		return errors.Errorf("unknown request status (%v)", d.Status)
	}
	return nil
}

type StatusChangeData struct {
	Status models.RequestStatus `json:"status"`
}

func (d StatusChangeData) Validate() error {
	if !d.Status.IsValid() {
		return errors.Errorf("unknown request status (%v)", d.Status)
	}
	return nil
}

type HiringRequestView struct {
	ID            string `json:"id"`
	JobTitle      string `json:"job_title"`
	Service       string `json:"service"`
	WorkLocation  string `json:"work_location"`
	ContractType  string `json:"contract_type"`
	Justification string `json:"justification"`
	HeadCount     int    `json:"head_count"`
	Status        models.RequestStatus    `json:"status"`
	StatusName    string                  `json:"status_name"`
	Recruiter     *userapimodels.UserView `json:"recruiter,omitempty"`
	CreatedAt     time.Time               `json:"created_at"`
	UpdatedAt     time.Time               `json:"updated_at"`
}

type RequestFilter struct {
	Status models.RequestStatus `json:"status"`
	Search string               `json:"search"`
}
