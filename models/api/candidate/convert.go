package candidateapimodels

import (
	hiringrequestapimodels "recruit-track-backend/models/api/hiring-request"
	dbmodels "recruit-track-backend/models/db"
)

func Convert(rec dbmodels.Candidate) CandidateView {
	view := CandidateView{
		ID:              rec.ID,
		FirstName:       rec.FirstName,
		LastName:        rec.LastName,
		Email:           rec.Email,
		Phone:           rec.Phone,
		Address:         rec.Address,
		BirthDate:       rec.BirthDate,
		Profession:      rec.Profession,
		ExperienceYears: rec.ExperienceYears,
		Salary:          rec.Salary,
		Comment:         rec.Comment,
		Status:          rec.Status,
		StatusName:      rec.Status.ToHuman(),
		CreatedAt:       rec.CreatedAt,
		UpdatedAt:       rec.UpdatedAt,
	}
	if rec.HiringRequestID != nil {
		view.HiringRequestID = *rec.HiringRequestID
	}
	if rec.HiringRequest != nil {
		request := hiringrequestapimodels.Convert(*rec.HiringRequest)
		view.HiringRequest = &request
	}
	return view
}

func ConvertHistory(rec dbmodels.CandidateStatusHistory) StatusHistoryView {
	view := StatusHistoryView{
		ID:            rec.ID,
		CandidateID:   rec.CandidateID,
		OldStatus:     rec.OldStatus,
		NewStatus:     rec.NewStatus,
		Label:         rec.Label,
		ChangedByName: rec.ChangedByName,
		Comment:       rec.Comment,
		CreatedAt:     rec.CreatedAt,
	}
	if rec.ChangedByID != nil {
		view.ChangedByID = *rec.ChangedByID
	}
	return view
}
