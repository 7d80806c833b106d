package db

import (
	"fmt"

	gorm_logrus "github.com/onrik/gorm-logrus"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Connect(host string, port string, database string, user string, pass string, debugMode bool, migrate bool) (err error) {
	if DB == nil {
		dbConnString := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable password=%s", host, port, user, database, pass)
		db, err := gorm.Open(postgres.Open(dbConnString), &gorm.Config{
			Logger:         gorm_logrus.New(),
			TranslateError: true,
		})
		if err != nil {
			return errors.Wrap(err, "database connection failed")
		}
		if debugMode {
			db.Logger = logger.Default.LogMode(logger.Info)
			DB = db.Debug()
		} else {
			DB = db
		}
		if migrate {
			err = AutoMigrateDB()
			if err != nil {
				return err
			}
		}
		log.Info("connected to database")
	}
	return err
}

func PingDB() error {
	db, err := DB.DB()
	if err != nil {
		return err
	}
	if err = db.Ping(); err != nil {
		return err
	}
	return nil
}

// IsDuplicateKeyError reports a unique constraint violation, either the
// postgres error code or the gorm sentinel raised by other dialects.
func IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
