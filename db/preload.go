package db

import (
	log "github.com/sirupsen/logrus"

	"recruit-track-backend/config"
	usersstore "recruit-track-backend/lib/users/store"
	"recruit-track-backend/models"
	dbmodels "recruit-track-backend/models/db"
)

func InitPreload() {
	addDefaultAdmin()
}

func addDefaultAdmin() {
	if config.Conf.Admin.Username == "" {
		log.Warn("default admin not created, ADMIN_USERNAME is not set")
		return
	}
	store := usersstore.NewInstance(DB)
	existedRec, err := store.FindByUsername(config.Conf.Admin.Username)
	if err != nil {
		log.WithError(err).Error("default admin lookup failed")
		return
	}
	if existedRec != nil {
		return
	}
	rec := dbmodels.User{
		Username: config.Conf.Admin.Username,
		Email:    config.Conf.Admin.Email,
		Role:     models.UserRoleHRManager,
		IsActive: true,
	}
	if err := rec.SetPassword(config.Conf.Admin.Password); err != nil {
		log.WithError(err).Error("default admin password hashing failed")
		return
	}
	if _, err := store.Create(rec); err != nil {
		log.WithError(err).Error("default admin creation failed")
	}
}
