package candidatehandler

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"recruit-track-backend/models"
	candidateapimodels "recruit-track-backend/models/api/candidate"
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

func historyRows(t *testing.T, database *gorm.DB, candidateID string) []dbmodels.CandidateStatusHistory {
	list := []dbmodels.CandidateStatusHistory{}
	err := database.
		Where("candidate_id = ?", candidateID).
		Order("created_at asc").
		Find(&list).
		Error
	require.Nil(t, err)
	return list
}

func TestCandidateStatusHistory(t *testing.T) {
	database := openTestDB(t)
	handler := NewHandlerWithDB(database)

	id, err := handler.Create("", candidateapimodels.CandidateData{
		FirstName:  "Jane",
		LastName:   "Doe",
		Profession: "Mechanical engineer",
	})
	require.Nil(t, err)

	t.Run(`creation writes the initial history row`, func(t *testing.T) {
		rows := historyRows(t, database, id)
		require.Len(t, rows, 1)
		require.Equal(t, models.CandidateStatus(""), rows[0].OldStatus)
		require.Equal(t, models.CandidateStatusReceived, rows[0].NewStatus)
		require.Equal(t, models.SystemUser, rows[0].ChangedByName)
	})

	t.Run(`update without status change appends nothing`, func(t *testing.T) {
		err := handler.Update(id, "", candidateapimodels.CandidateData{
			FirstName:  "Jane",
			LastName:   "Doe",
			Profession: "Process engineer",
		})
		require.Nil(t, err)
		require.Len(t, historyRows(t, database, id), 1)

		view, err := handler.GetByID(id)
		require.Nil(t, err)
		require.Equal(t, "Process engineer", view.Profession)
		require.Equal(t, models.CandidateStatusReceived, view.Status)
	})

	t.Run(`status change appends exactly one row`, func(t *testing.T) {
		err := handler.Update(id, "", candidateapimodels.CandidateData{
			FirstName:     "Jane",
			LastName:      "Doe",
			Profession:    "Process engineer",
			Status:        models.CandidateStatusUnderReview,
			StatusComment: "profile matches the opening",
		})
		require.Nil(t, err)

		rows := historyRows(t, database, id)
		require.Len(t, rows, 2)
		last := rows[len(rows)-1]
		require.Equal(t, models.CandidateStatusReceived, last.OldStatus)
		require.Equal(t, models.CandidateStatusUnderReview, last.NewStatus)
		require.Equal(t, models.CandidateStatusUnderReview.ToHuman(), last.Label)
		require.Equal(t, "profile matches the opening", last.Comment)
	})

	t.Run(`same status again appends nothing`, func(t *testing.T) {
		err := handler.Update(id, "", candidateapimodels.CandidateData{
			FirstName: "Jane",
			LastName:  "Doe",
			Status:    models.CandidateStatusUnderReview,
		})
		require.Nil(t, err)
		require.Len(t, historyRows(t, database, id), 2)
	})
}

func TestCandidateUnknownHiringRequest(t *testing.T) {
	database := openTestDB(t)
	handler := NewHandlerWithDB(database)

	_, err := handler.Create("", candidateapimodels.CandidateData{
		FirstName:       "Jane",
		HiringRequestID: "no-such-request",
	})
	require.ErrorIs(t, err, models.ErrNotFound)
}

func TestCandidateListFilter(t *testing.T) {
	database := openTestDB(t)
	handler := NewHandlerWithDB(database)

	_, err := handler.Create("", candidateapimodels.CandidateData{FirstName: "Anna", Status: models.CandidateStatusShortlisted})
	require.Nil(t, err)
	_, err = handler.Create("", candidateapimodels.CandidateData{FirstName: "Boris"})
	require.Nil(t, err)

	list, rowCount, err := handler.List(candidateapimodels.CandidateFilter{
		Status: models.CandidateStatusShortlisted,
	})
	require.Nil(t, err)
	require.Equal(t, int64(1), rowCount)
	require.Len(t, list, 1)
	require.Equal(t, "Anna", list[0].FirstName)
}

func TestCandidateListAllUnpaged(t *testing.T) {
	database := openTestDB(t)
	handler := NewHandlerWithDB(database)

	const total = 120
	for n := 0; n < total; n++ {
		_, err := handler.Create("", candidateapimodels.CandidateData{
			FirstName:  fmt.Sprintf("Candidate%03d", n),
			Profession: "Welder",
		})
		require.Nil(t, err)
	}
	_, err := handler.Create("", candidateapimodels.CandidateData{
		FirstName:  "Other",
		Profession: "Electrician",
	})
	require.Nil(t, err)

	list, err := handler.ListAll(candidateapimodels.CandidateFilter{Search: "Welder"})
	require.Nil(t, err)
	require.Len(t, list, total)

	paged, rowCount, err := handler.List(candidateapimodels.CandidateFilter{Search: "Welder"})
	require.Nil(t, err)
	require.Equal(t, int64(total), rowCount)
	require.Len(t, paged, 10)
}
