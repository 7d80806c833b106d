package interviewhandler

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"recruit-track-backend/models"
	interviewapimodels "recruit-track-backend/models/api/interview"
	dbmodels "recruit-track-backend/models/db"
)

func openTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.Nil(t, err)
	require.Nil(t, database.AutoMigrate(&dbmodels.User{}, &dbmodels.HiringRequest{},
		&dbmodels.Candidate{}, &dbmodels.Interview{}))
	return database
}

func addCandidate(t *testing.T, database *gorm.DB) string {
	rec := dbmodels.Candidate{
		FirstName: "Jane",
		LastName:  "Doe",
		Status:    models.CandidateStatusShortlisted,
	}
	require.Nil(t, database.Create(&rec).Error)
	return rec.ID
}

func addInterviewer(t *testing.T, database *gorm.DB) string {
	rec := dbmodels.User{
		Username: "interviewer",
		Role:     models.UserRoleRecruiter,
		IsActive: true,
	}
	require.Nil(t, database.Create(&rec).Error)
	return rec.ID
}

func TestInterviewLifecycle(t *testing.T) {
	database := openTestDB(t)
	handler := NewHandlerWithDB(database, nil)
	candidateID := addCandidate(t, database)
	interviewerID := addInterviewer(t, database)
	scheduledAt := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)

	id, err := handler.Create("", interviewapimodels.InterviewData{
		CandidateID:   candidateID,
		Type:          models.InterviewTypeTechnical,
		ScheduledAt:   scheduledAt,
		Location:      "Room 4",
		InterviewerID: interviewerID,
	})
	require.Nil(t, err)

	view, err := handler.GetByID(id)
	require.Nil(t, err)
	require.Equal(t, candidateID, view.CandidateID)
	require.Equal(t, models.InterviewTypeTechnical, view.Type)
	require.NotNil(t, view.Candidate)
	require.Equal(t, "Jane Doe", view.Candidate.FirstName+" "+view.Candidate.LastName)
	require.NotNil(t, view.Interviewer)
	require.Equal(t, "interviewer", view.Interviewer.Username)

	err = handler.Update(id, interviewapimodels.InterviewData{
		CandidateID: candidateID,
		Type:        models.InterviewTypeTechnical,
		ScheduledAt: scheduledAt,
		Location:    "Room 4",
		Result:      models.InterviewResultPassed,
		Feedback:    "solid technical background",
	})
	require.Nil(t, err)

	view, err = handler.GetByID(id)
	require.Nil(t, err)
	require.Equal(t, models.InterviewResultPassed, view.Result)

	require.Nil(t, handler.Delete(id))
	_, err = handler.GetByID(id)
	require.ErrorIs(t, err, models.ErrNotFound)
}

func TestInterviewUnknownCandidate(t *testing.T) {
	database := openTestDB(t)
	handler := NewHandlerWithDB(database, nil)

	_, err := handler.Create("", interviewapimodels.InterviewData{
		CandidateID: "no-such-candidate",
		Type:        models.InterviewTypeHR,
		ScheduledAt: time.Now(),
	})
	require.ErrorIs(t, err, models.ErrNotFound)
}
