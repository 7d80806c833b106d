package candidateapimodels

import (
	"time"

	"github.com/pkg/errors"

	"recruit-track-backend/models"
	apimodels "recruit-track-backend/models/api"
	hiringrequestapimodels "recruit-track-backend/models/api/hiring-request"
)

type CandidateData struct {
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Address         string    `json:"address"`
	BirthDate       time.Time `json:"birth_date"`
	Profession      string    `json:"profession"`
	ExperienceYears int       `json:"experience_years"`
	Salary          int       `json:"salary"`
	Comment         string    `json:"comment"`
	Status          models.CandidateStatus `json:"status"`
	HiringRequestID string                 `json:"hiring_request_id"`
	StatusComment   string                 `json:"status_comment"`
}

func (d CandidateData) Validate() error {
	if d.FirstName == "" && d.LastName == "" {
		return errors.New("candidate name is required")
	}
	if d.Status != "" && !d.Status.IsValid() {
		return errors.Errorf("unknown candidate status (%v)", d.Status)
	}
	return nil
}

type CandidateView struct {
	ID              string    `json:"id"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Address         string    `json:"address"`
	BirthDate       time.Time `json:"birth_date"`
	Profession      string    `json:"profession"`
	ExperienceYears int       `json:"experience_years"`
	Salary          int       `json:"salary"`
	Comment         string    `json:"comment"`
	Status          models.CandidateStatus `json:"status"`
	StatusName      string                 `json:"status_name"`
	HiringRequestID string                 `json:"hiring_request_id,omitempty"`
	HiringRequest   *hiringrequestapimodels.HiringRequestView `json:"hiring_request,omitempty"`
	CreatedAt       time.Time                                 `json:"created_at"`
	UpdatedAt       time.Time                                 `json:"updated_at"`
}

type CandidateFilter struct {
	apimodels.Pagination
	Status          models.CandidateStatus `json:"status"`
	HiringRequestID string                 `json:"hiring_request_id"`
	Search          string                 `json:"search"`
}

func (f CandidateFilter) Validate() error {
	if f.Status != "" && !f.Status.IsValid() {
		return errors.Errorf("unknown candidate status (%v)", f.Status)
	}
	return nil
}

type StatusHistoryView struct {
	ID            string `json:"id"`
	CandidateID   string `json:"candidate_id"`
	OldStatus     models.CandidateStatus `json:"old_status"`
	NewStatus     models.CandidateStatus `json:"new_status"`
	Label         string                 `json:"label"`
	ChangedByID   string                 `json:"changed_by_id,omitempty"`
	ChangedByName string                 `json:"changed_by_name"`
	Comment       string                 `json:"comment,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
}
