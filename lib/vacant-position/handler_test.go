package vacantpositionhandler

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"recruit-track-backend/models"
	dbmodels "recruit-track-backend/models/db"
)

func openTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.Nil(t, err)
	require.Nil(t, database.AutoMigrate(&dbmodels.User{}, &dbmodels.HiringRequest{}))
	return database
}

func addRequest(t *testing.T, database *gorm.DB, jobTitle string, status models.RequestStatus) {
	rec := dbmodels.HiringRequest{
		JobTitle: jobTitle,
		Status:   status,
	}
	require.Nil(t, database.Create(&rec).Error)
}

func TestVacantPositionList(t *testing.T) {
	database := openTestDB(t)
	handler := NewHandlerWithDB(database)

	addRequest(t, database, "Welder", models.RequestStatusVacant)
	addRequest(t, database, "Electrician", models.RequestStatusInProgress)
	addRequest(t, database, "Accountant", models.RequestStatusHired)
	addRequest(t, database, "Technician", models.RequestStatusCompleted)
	addRequest(t, database, "Operator", models.RequestStatusCancelled)

	list, err := handler.List()
	require.Nil(t, err)
	require.Len(t, list, 2)

	titles := map[string]bool{}
	for _, view := range list {
		require.NotEmpty(t, view.ID)
		require.Contains(t, []string{string(models.RequestStatusVacant), string(models.RequestStatusInProgress)}, view.Status)
		titles[view.JobTitle] = true
	}
	require.True(t, titles["Welder"])
	require.True(t, titles["Electrician"])
}
