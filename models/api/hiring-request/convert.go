package hiringrequestapimodels

import (
	userapimodels "recruit-track-backend/models/api/user"
	dbmodels "recruit-track-backend/models/db"
)

func Convert(rec dbmodels.HiringRequest) HiringRequestView {
	view := HiringRequestView{
		ID:            rec.ID,
		JobTitle:      rec.JobTitle,
		Service:       rec.Service,
		WorkLocation:  rec.WorkLocation,
		ContractType:  rec.ContractType,
		Justification: rec.Justification,
		HeadCount:     rec.HeadCount,
		Status:        rec.Status,
		StatusName:    rec.Status.ToHuman(),
		CreatedAt:     rec.CreatedAt,
		UpdatedAt:     rec.UpdatedAt,
	}
	if rec.Recruiter != nil {
		recruiter := rec.Recruiter.ToModel()
		view.Recruiter = &recruiter
	}
	return view
}

func ConvertList(list []dbmodels.HiringRequest) []HiringRequestView {
	result := make([]HiringRequestView, 0, len(list))
	for _, rec := range list {
		result = append(result, Convert(rec))
	}
	return result
}

// VacantPositionView is the trimmed projection served to the dashboard board.
type VacantPositionView struct {
	ID           string `json:"id"`
	JobTitle     string `json:"job_title"`
	Service      string `json:"service"`
	WorkLocation string `json:"work_location"`
	ContractType string `json:"contract_type"`
	HeadCount    int    `json:"head_count"`
	Status       string `json:"status"`
	Recruiter    *userapimodels.UserView `json:"recruiter,omitempty"`
	CreatedAt    string                  `json:"created_at"`
}

func ConvertVacant(rec dbmodels.HiringRequest) VacantPositionView {
	view := VacantPositionView{
		ID:           rec.ID,
		JobTitle:     rec.JobTitle,
		Service:      rec.Service,
		WorkLocation: rec.WorkLocation,
		ContractType: rec.ContractType,
		HeadCount:    rec.HeadCount,
		Status:       string(rec.Status),
		CreatedAt:    rec.CreatedAt.Format("2006-01-02"),
	}
	if rec.Recruiter != nil {
		recruiter := rec.Recruiter.ToModel()
		view.Recruiter = &recruiter
	}
	return view
}
