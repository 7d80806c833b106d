package candidatehandler

import (
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"recruit-track-backend/db"
	candidatehistoryhandler "recruit-track-backend/lib/candidate-history"
	candidatestore "recruit-track-backend/lib/candidate/store"
	hiringrequeststore "recruit-track-backend/lib/hiring-request/store"
	"recruit-track-backend/models"
	candidateapimodels "recruit-track-backend/models/api/candidate"
	dbmodels "recruit-track-backend/models/db"
)

type Provider interface {
	Create(userID string, data candidateapimodels.CandidateData) (id string, err error)
	GetByID(id string) (view candidateapimodels.CandidateView, err error)
	Update(id, userID string, data candidateapimodels.CandidateData) error
	Delete(id string) error
	List(filter candidateapimodels.CandidateFilter) (list []candidateapimodels.CandidateView, rowCount int64, err error)
	ListAll(filter candidateapimodels.CandidateFilter) (list []dbmodels.Candidate, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		database:     db.DB,
		store:        candidatestore.NewInstance(db.DB),
		requestStore: hiringrequeststore.NewInstance(db.DB),
		history:      candidatehistoryhandler.Instance,
	}
}

// NewHandlerWithDB wires the handler onto an explicit connection, used by tests.
func NewHandlerWithDB(database *gorm.DB) Provider {
	return impl{
		database:     database,
		store:        candidatestore.NewInstance(database),
		requestStore: hiringrequeststore.NewInstance(database),
		history:      candidatehistoryhandler.NewHandlerWithDB(database),
	}
}

type impl struct {
	database     *gorm.DB
	store        candidatestore.Provider
	requestStore hiringrequeststore.Provider
	history      candidatehistoryhandler.Provider
}

func (i impl) Create(userID string, data candidateapimodels.CandidateData) (id string, err error) {
	logger := log.WithField("candidate", data.FirstName+" "+data.LastName)
	rec := dbmodels.Candidate{
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		Email:           data.Email,
		Phone:           data.Phone,
		Address:         data.Address,
		BirthDate:       data.BirthDate,
		Profession:      data.Profession,
		ExperienceYears: data.ExperienceYears,
		Salary:          data.Salary,
		Comment:         data.Comment,
		Status:          models.CandidateStatusReceived,
	}
	if data.Status != "" {
		rec.Status = data.Status
	}
	if data.HiringRequestID != "" {
		if err = i.checkRequest(data.HiringRequestID); err != nil {
			return "", err
		}
		rec.HiringRequestID = &data.HiringRequestID
	}
	err = i.database.Transaction(func(tx *gorm.DB) error {
		recID, txErr := candidatestore.NewInstance(tx).Create(rec)
		if txErr != nil {
			return txErr
		}
		id = recID
		return i.history.Save(tx, recID, userID, "", rec.Status, data.StatusComment)
	})
	if err != nil {
		logger.WithError(err).Error("candidate creation failed")
		return "", err
	}
	logger.WithField("rec_id", id).Info("candidate created")
	return id, nil
}

func (i impl) GetByID(id string) (candidateapimodels.CandidateView, error) {
	rec, err := i.getRec(id)
	if err != nil {
		return candidateapimodels.CandidateView{}, err
	}
	return candidateapimodels.Convert(*rec), nil
}

// Update persists the new field values, appending a status history row
// in the same transaction when the status actually changed.
func (i impl) Update(id, userID string, data candidateapimodels.CandidateData) error {
	logger := log.WithField("rec_id", id)
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"first_name":       data.FirstName,
		"last_name":        data.LastName,
		"email":            data.Email,
		"phone":            data.Phone,
		"address":          data.Address,
		"birth_date":       data.BirthDate,
		"profession":       data.Profession,
		"experience_years": data.ExperienceYears,
		"salary":           data.Salary,
		"comment":          data.Comment,
	}
	statusChanged := data.Status != "" && data.Status != rec.Status
	if statusChanged {
		updMap["status"] = data.Status
	}
	if data.HiringRequestID != "" && (rec.HiringRequestID == nil || *rec.HiringRequestID != data.HiringRequestID) {
		if err = i.checkRequest(data.HiringRequestID); err != nil {
			return err
		}
		updMap["hiring_request_id"] = data.HiringRequestID
	}
	err = i.database.Transaction(func(tx *gorm.DB) error {
		txErr := candidatestore.NewInstance(tx).Update(id, updMap)
		if txErr != nil {
			return txErr
		}
		if !statusChanged {
			return nil
		}
		return i.history.Save(tx, id, userID, rec.Status, data.Status, data.StatusComment)
	})
	if err != nil {
		logger.WithError(err).Error("candidate update failed")
		return err
	}
	logger.Info("candidate updated")
	return nil
}

func (i impl) Delete(id string) error {
	logger := log.WithField("rec_id", id)
	_, err := i.getRec(id)
	if err != nil {
		return err
	}
	err = i.store.Delete(id)
	if err != nil {
		logger.WithError(err).Error("candidate deletion failed")
		return err
	}
	logger.Info("candidate deleted")
	return nil
}

func (i impl) List(filter candidateapimodels.CandidateFilter) ([]candidateapimodels.CandidateView, int64, error) {
	rowCount, err := i.store.ListCount(filter)
	if err != nil {
		log.WithError(err).Error("candidate list count failed")
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	if int64(offset) > rowCount {
		return []candidateapimodels.CandidateView{}, rowCount, nil
	}
	list, err := i.store.List(filter)
	if err != nil {
		log.WithError(err).Error("candidate list failed")
		return nil, 0, err
	}
	result := make([]candidateapimodels.CandidateView, 0, len(list))
	for _, rec := range list {
		result = append(result, candidateapimodels.Convert(rec))
	}
	return result, rowCount, nil
}

// ListAll returns raw records without paging, used by the export builders.
func (i impl) ListAll(filter candidateapimodels.CandidateFilter) ([]dbmodels.Candidate, error) {
	list, err := i.store.ListAll(filter)
	if err != nil {
		log.WithError(err).Error("candidate export list failed")
		return nil, err
	}
	return list, nil
}

func (i impl) getRec(id string) (*dbmodels.Candidate, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, models.ErrNotFound
	}
	return rec, nil
}

func (i impl) checkRequest(requestID string) error {
	rec, err := i.requestStore.GetByID(requestID)
	if err != nil {
		return err
	}
	if rec == nil {
		return models.ErrNotFound
	}
	return nil
}
