package candidatehistoryhandler

import (
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"recruit-track-backend/db"
	candidatehistorystore "recruit-track-backend/lib/candidate-history/store"
	usersstore "recruit-track-backend/lib/users/store"
	"recruit-track-backend/models"
	candidateapimodels "recruit-track-backend/models/api/candidate"
	dbmodels "recruit-track-backend/models/db"
)

type Provider interface {
	List(candidateID string) ([]candidateapimodels.StatusHistoryView, error)
	Save(tx *gorm.DB, candidateID, userID string, oldStatus, newStatus models.CandidateStatus, comment string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:     candidatehistorystore.NewInstance(db.DB),
		userStore: usersstore.NewInstance(db.DB),
	}
}

// NewHandlerWithDB wires the handler onto an explicit connection, used by tests.
func NewHandlerWithDB(database *gorm.DB) Provider {
	return impl{
		store:     candidatehistorystore.NewInstance(database),
		userStore: usersstore.NewInstance(database),
	}
}

type impl struct {
	store     candidatehistorystore.Provider
	userStore usersstore.Provider
}

func (i impl) List(candidateID string) ([]candidateapimodels.StatusHistoryView, error) {
	list, err := i.store.ListByCandidate(candidateID)
	if err != nil {
		log.WithField("candidate_id", candidateID).
			WithError(err).Error("candidate status history list failed")
		return nil, err
	}
	result := make([]candidateapimodels.StatusHistoryView, 0, len(list))
	for _, rec := range list {
		result = append(result, candidateapimodels.ConvertHistory(rec))
	}
	return result, nil
}

// Save appends one transition row. When tx is non-nil the row joins the
// caller's transaction so the candidate update and its audit commit together.
func (i impl) Save(tx *gorm.DB, candidateID, userID string, oldStatus, newStatus models.CandidateStatus, comment string) error {
	logger := log.WithField("candidate_id", candidateID).
		WithField("old_status", oldStatus).
		WithField("new_status", newStatus)
	rec := dbmodels.CandidateStatusHistory{
		CandidateID:   candidateID,
		OldStatus:     oldStatus,
		NewStatus:     newStatus,
		Label:         newStatus.ToHuman(),
		ChangedByName: models.SystemUser,
		Comment:       comment,
	}
	if userID != "" {
		rec.ChangedByID = &userID
		user, err := i.userStore.GetByID(userID)
		if err != nil {
			logger.WithError(err).Error("candidate status history author lookup failed")
		}
		if user != nil {
			rec.ChangedByName = user.GetFullName()
		}
	}
	store := i.store
	if tx != nil {
		store = candidatehistorystore.NewInstance(tx)
	}
	_, err := store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("candidate status history save failed")
		return err
	}
	return nil
}
