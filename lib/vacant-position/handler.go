package vacantpositionhandler

import (
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"recruit-track-backend/db"
	hiringrequeststore "recruit-track-backend/lib/hiring-request/store"
	"recruit-track-backend/models"
	hiringrequestapimodels "recruit-track-backend/models/api/hiring-request"
)

// Provider serves the public board of positions still being filled.
type Provider interface {
	List() (list []hiringrequestapimodels.VacantPositionView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: hiringrequeststore.NewInstance(db.DB),
	}
}

// NewHandlerWithDB wires the handler onto an explicit connection, used by tests.
func NewHandlerWithDB(database *gorm.DB) Provider {
	return impl{
		store: hiringrequeststore.NewInstance(database),
	}
}

type impl struct {
	store hiringrequeststore.Provider
}

func (i impl) List() ([]hiringrequestapimodels.VacantPositionView, error) {
	list, err := i.store.ListByStatuses(models.VacantStatuses)
	if err != nil {
		log.WithError(err).Error("vacant position list failed")
		return nil, err
	}
	result := make([]hiringrequestapimodels.VacantPositionView, 0, len(list))
	for _, rec := range list {
		result = append(result, hiringrequestapimodels.ConvertVacant(rec))
	}
	return result, nil
}
