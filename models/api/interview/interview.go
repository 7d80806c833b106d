package interviewapimodels

import (
	"time"

	"github.com/pkg/errors"

	"recruit-track-backend/models"
	candidateapimodels "recruit-track-backend/models/api/candidate"
	userapimodels "recruit-track-backend/models/api/user"
	dbmodels "recruit-track-backend/models/db"
)

type InterviewData struct {
	CandidateID   string               `json:"candidate_id"`
	Type          models.InterviewType `json:"type"`
	ScheduledAt   time.Time            `json:"scheduled_at"`
	Location      string               `json:"location"`
	InterviewerID string               `json:"interviewer_id"`
	Result        models.InterviewResult `json:"result"`
	Feedback      string                 `json:"feedback"`
}

func (d InterviewData) Validate() error {
	if d.CandidateID == "" {
		return errors.New("candidate is required")
	}
	if !d.Type.IsValid() {
		return errors.Errorf("unknown interview type (%v)", d.Type)
	}
	if d.ScheduledAt.IsZero() {
		return errors.New("interview date is required")
	}
	if d.Result != "" && !d.Result.IsValid() {
		return errors.Errorf("unknown interview result (%v)", d.Result)
	}
	return nil
}

type InterviewView struct {
	ID          string               `json:"id"`
	CandidateID string               `json:"candidate_id"`
	Type        models.InterviewType `json:"type"`
	ScheduledAt time.Time            `json:"scheduled_at"`
	Location    string               `json:"location"`
	Result      models.InterviewResult `json:"result"`
	Feedback    string                 `json:"feedback,omitempty"`
	Candidate   *candidateapimodels.CandidateView `json:"candidate,omitempty"`
	Interviewer *userapimodels.UserView           `json:"interviewer,omitempty"`
	CreatedAt   time.Time                         `json:"created_at"`
}

func Convert(rec dbmodels.Interview) InterviewView {
	view := InterviewView{
		ID:          rec.ID,
		CandidateID: rec.CandidateID,
		Type:        rec.Type,
		ScheduledAt: rec.ScheduledAt,
		Location:    rec.Location,
		Result:      rec.Result,
		Feedback:    rec.Feedback,
		CreatedAt:   rec.CreatedAt,
	}
	if rec.Candidate != nil {
		candidate := candidateapimodels.Convert(*rec.Candidate)
		view.Candidate = &candidate
	}
	if rec.Interviewer != nil {
		interviewer := rec.Interviewer.ToModel()
		view.Interviewer = &interviewer
	}
	return view
}
