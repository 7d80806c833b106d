package usershandler

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"recruit-track-backend/db"
	"recruit-track-backend/models"
	userapimodels "recruit-track-backend/models/api/user"
	dbmodels "recruit-track-backend/models/db"
)

func openTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.Nil(t, err)
	require.Nil(t, database.AutoMigrate(&dbmodels.User{}))
	return database
}

func TestUserCreate(t *testing.T) {
	database := openTestDB(t)
	handler := NewHandlerWithDB(database)

	t.Run(`password is stored hashed`, func(t *testing.T) {
		view, err := handler.Create(userapimodels.UserCreateData{
			Username:  "jsmith",
			Password:  "s3cret-pass",
			FirstName: "John",
			LastName:  "Smith",
			Email:     "jsmith@example.com",
			Role:      models.UserRoleRecruiter,
		})
		require.Nil(t, err)
		require.NotEmpty(t, view.ID)

		rec := dbmodels.User{}
		require.Nil(t, database.Where("id = ?", view.ID).First(&rec).Error)
		require.NotEqual(t, "s3cret-pass", rec.Password)
		require.True(t, rec.CheckPassword("s3cret-pass"))
		require.False(t, rec.CheckPassword("wrong-pass"))
	})

	t.Run(`view never carries the password`, func(t *testing.T) {
		view, err := handler.GetByID(mustFindID(t, database, "jsmith"))
		require.Nil(t, err)
		require.Equal(t, "jsmith", view.Username)
		require.Equal(t, models.UserRoleRecruiter, view.Role)
	})

	t.Run(`duplicate username is a key conflict`, func(t *testing.T) {
		_, err := handler.Create(userapimodels.UserCreateData{
			Username: "jsmith",
			Password: "another-pass",
			Role:     models.UserRoleRecruiter,
		})
		require.NotNil(t, err)
		require.True(t, db.IsDuplicateKeyError(err))
	})
}

func TestUserLegacyRoleAlias(t *testing.T) {
	database := openTestDB(t)
	handler := NewHandlerWithDB(database)

	view, err := handler.Create(userapimodels.UserCreateData{
		Username: "legacy",
		Password: "legacy-pass",
		Role:     "rh",
	})
	require.Nil(t, err)
	require.Equal(t, models.UserRoleHRManager, view.Role)
}

func mustFindID(t *testing.T, database *gorm.DB, username string) string {
	rec := dbmodels.User{}
	require.Nil(t, database.Where("username = ?", username).First(&rec).Error)
	return rec.ID
}
