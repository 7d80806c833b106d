package hiringrequesthandler

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	candidatehandler "recruit-track-backend/lib/candidate"
	"recruit-track-backend/models"
	candidateapimodels "recruit-track-backend/models/api/candidate"
	hiringrequestapimodels "recruit-track-backend/models/api/hiring-request"
	dbmodels "recruit-track-backend/models/db"
)

func openTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.Nil(t, err)
	require.Nil(t, database.AutoMigrate(&dbmodels.User{}, &dbmodels.HiringRequest{},
		&dbmodels.Candidate{}, &dbmodels.CandidateStatusHistory{}))
	return database
}

func TestHiringRequestDeleteKeepsCandidates(t *testing.T) {
	database := openTestDB(t)
	handler := NewHandlerWithDB(database, nil)
	candidates := candidatehandler.NewHandlerWithDB(database)

	requestID, err := handler.Create("", hiringrequestapimodels.HiringRequestData{
		JobTitle: "Maintenance technician",
	})
	require.Nil(t, err)

	candidateID, err := candidates.Create("", candidateapimodels.CandidateData{
		FirstName:       "Jane",
		HiringRequestID: requestID,
	})
	require.Nil(t, err)

	require.Nil(t, handler.Delete(requestID))

	_, err = handler.GetByID(requestID)
	require.ErrorIs(t, err, models.ErrNotFound)

	// the candidate survives with a dangling reference
	view, err := candidates.GetByID(candidateID)
	require.Nil(t, err)
	require.Equal(t, requestID, view.HiringRequestID)
	require.Nil(t, view.HiringRequest)
}

func TestHiringRequestStatusChange(t *testing.T) {
	database := openTestDB(t)
	handler := NewHandlerWithDB(database, nil)

	id, err := handler.Create("", hiringrequestapimodels.HiringRequestData{
		JobTitle: "Shift supervisor",
	})
	require.Nil(t, err)

	view, err := handler.GetByID(id)
	require.Nil(t, err)
	require.Equal(t, models.RequestStatusVacant, view.Status)

	require.Nil(t, handler.ChangeStatus(id, "", models.RequestStatusInProgress))

	view, err = handler.GetByID(id)
	require.Nil(t, err)
	require.Equal(t, models.RequestStatusInProgress, view.Status)
}

func TestHiringRequestUnknownRecruiter(t *testing.T) {
	database := openTestDB(t)
	handler := NewHandlerWithDB(database, nil)

	_, err := handler.Create("", hiringrequestapimodels.HiringRequestData{
		JobTitle:    "Quality inspector",
		RecruiterID: "no-such-user",
	})
	require.ErrorIs(t, err, models.ErrNotFound)
}
