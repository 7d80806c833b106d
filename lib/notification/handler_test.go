package notificationhandler

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"recruit-track-backend/models"
	notificationapimodels "recruit-track-backend/models/api/notification"
	dbmodels "recruit-track-backend/models/db"
)

func openTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.Nil(t, err)
	require.Nil(t, database.AutoMigrate(&dbmodels.User{}, &dbmodels.Notification{}))
	return database
}

func TestNotifications(t *testing.T) {
	database := openTestDB(t)
	handler := NewHandlerWithDB(database)

	firstID, err := handler.Create("", notificationapimodels.NotificationCreateData{
		UserID:  "user-a",
		Title:   "Reminder",
		Message: "interview tomorrow",
	})
	require.Nil(t, err)
	_, err = handler.Create("", notificationapimodels.NotificationCreateData{
		UserID: "user-a",
		Type:   models.NotificationTypeRequestAssigned,
		Title:  "New hiring request assigned",
	})
	require.Nil(t, err)

	t.Run(`missing type falls back to system`, func(t *testing.T) {
		list, err := handler.ListMine("user-a", 1, 10)
		require.Nil(t, err)
		require.Len(t, list, 2)
		for _, view := range list {
			if view.ID == firstID {
				require.Equal(t, models.NotificationTypeSystem, view.Type)
			}
		}
	})

	t.Run(`unread count tracks read marks`, func(t *testing.T) {
		count, err := handler.UnreadCount("user-a")
		require.Nil(t, err)
		require.Equal(t, int64(2), count)

		require.Nil(t, handler.MarkRead("user-a", firstID))
		count, err = handler.UnreadCount("user-a")
		require.Nil(t, err)
		require.Equal(t, int64(1), count)

		require.Nil(t, handler.MarkAllRead("user-a"))
		count, err = handler.UnreadCount("user-a")
		require.Nil(t, err)
		require.Equal(t, int64(0), count)
	})

	t.Run(`foreign notification reads back as not found`, func(t *testing.T) {
		otherID, err := handler.Create("", notificationapimodels.NotificationCreateData{
			UserID: "user-b",
			Title:  "Private",
		})
		require.Nil(t, err)

		err = handler.MarkRead("user-a", otherID)
		require.ErrorIs(t, err, models.ErrNotFound)

		count, err := handler.UnreadCount("user-b")
		require.Nil(t, err)
		require.Equal(t, int64(1), count)
	})
}
