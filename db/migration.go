package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "recruit-track-backend/models/db"
)

func AutoMigrateDB() error {
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "migration failed for User")
	}
	if err := DB.AutoMigrate(&dbmodels.HiringRequest{}); err != nil {
		return errors.Wrap(err, "migration failed for HiringRequest")
	}
	if err := DB.AutoMigrate(&dbmodels.Candidate{}); err != nil {
		return errors.Wrap(err, "migration failed for Candidate")
	}
	if err := DB.AutoMigrate(&dbmodels.CandidateStatusHistory{}); err != nil {
		return errors.Wrap(err, "migration failed for CandidateStatusHistory")
	}
	if err := DB.AutoMigrate(&dbmodels.Interview{}); err != nil {
		return errors.Wrap(err, "migration failed for Interview")
	}
	if err := DB.AutoMigrate(&dbmodels.Notification{}); err != nil {
		return errors.Wrap(err, "migration failed for Notification")
	}
	if err := DB.AutoMigrate(&dbmodels.FileStorage{}); err != nil {
		return errors.Wrap(err, "migration failed for FileStorage")
	}
	log.Info("migrations finished")
	return nil
}
