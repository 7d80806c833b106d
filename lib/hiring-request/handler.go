package hiringrequesthandler

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"recruit-track-backend/db"
	hiringrequeststore "recruit-track-backend/lib/hiring-request/store"
	notificationhandler "recruit-track-backend/lib/notification"
	usersstore "recruit-track-backend/lib/users/store"
	"recruit-track-backend/models"
	hiringrequestapimodels "recruit-track-backend/models/api/hiring-request"
	dbmodels "recruit-track-backend/models/db"
)

type Provider interface {
	Create(userID string, data hiringrequestapimodels.HiringRequestData) (id string, err error)
	GetByID(id string) (view hiringrequestapimodels.HiringRequestView, err error)
	Update(id string, data hiringrequestapimodels.HiringRequestData) error
	Delete(id string) error
	List(filter hiringrequestapimodels.RequestFilter) (list []hiringrequestapimodels.HiringRequestView, err error)
	ChangeStatus(id, userID string, status models.RequestStatus) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:        hiringrequeststore.NewInstance(db.DB),
		userStore:    usersstore.NewInstance(db.DB),
		notification: notificationhandler.Instance,
	}
}

// NewHandlerWithDB wires the handler onto an explicit connection, used by tests.
func NewHandlerWithDB(database *gorm.DB, notification notificationhandler.Provider) Provider {
	return impl{
		store:        hiringrequeststore.NewInstance(database),
		userStore:    usersstore.NewInstance(database),
		notification: notification,
	}
}

type impl struct {
	store        hiringrequeststore.Provider
	userStore    usersstore.Provider
	notification notificationhandler.Provider
}

func (i impl) Create(userID string, data hiringrequestapimodels.HiringRequestData) (id string, err error) {
	logger := log.WithField("job_title", data.JobTitle)
	rec := dbmodels.HiringRequest{
		JobTitle:      data.JobTitle,
		Service:       data.Service,
		WorkLocation:  data.WorkLocation,
		ContractType:  data.ContractType,
		Justification: data.Justification,
		HeadCount:     data.HeadCount,
		Status:        models.RequestStatusVacant,
	}
	if data.Status != "" {
		rec.Status = data.Status
	}
	if data.RecruiterID != "" {
		if err = i.checkRecruiter(data.RecruiterID); err != nil {
			return "", err
		}
		rec.RecruiterID = &data.RecruiterID
	}
	id, err = i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("hiring request creation failed")
		return "", err
	}
	logger.WithField("rec_id", id).Info("hiring request created")
	if rec.RecruiterID != nil {
		i.notifyRecruiter(*rec.RecruiterID, userID, rec.JobTitle, id)
	}
	return id, nil
}

func (i impl) GetByID(id string) (hiringrequestapimodels.HiringRequestView, error) {
	rec, err := i.getRec(id)
	if err != nil {
		return hiringrequestapimodels.HiringRequestView{}, err
	}
	return hiringrequestapimodels.Convert(*rec), nil
}

func (i impl) Update(id string, data hiringrequestapimodels.HiringRequestData) error {
	logger := log.WithField("rec_id", id)
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"job_title":     data.JobTitle,
		"service":       data.Service,
		"work_location": data.WorkLocation,
		"contract_type": data.ContractType,
		"justification": data.Justification,
		"head_count":    data.HeadCount,
	}
	if data.Status != "" {
		updMap["status"] = data.Status
	}
	if data.RecruiterID != "" && (rec.RecruiterID == nil || *rec.RecruiterID != data.RecruiterID) {
		if err = i.checkRecruiter(data.RecruiterID); err != nil {
			return err
		}
		updMap["recruiter_id"] = data.RecruiterID
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		logger.WithError(err).Error("hiring request update failed")
		return err
	}
	logger.Info("hiring request updated")
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
		logger.WithError(err).Error("hiring request deletion failed")
		return err
	}
	logger.Info("hiring request deleted")
	return nil
}

func (i impl) List(filter hiringrequestapimodels.RequestFilter) ([]hiringrequestapimodels.HiringRequestView, error) {
	list, err := i.store.List(filter)
	if err != nil {
		log.WithError(err).Error("hiring request list failed")
		return nil, err
	}
	return hiringrequestapimodels.ConvertList(list), nil
}

func (i impl) ChangeStatus(id, userID string, status models.RequestStatus) error {
	logger := log.WithField("rec_id", id).
		WithField("status", status)
	_, err := i.getRec(id)
	if err != nil {
		return err
	}
	err = i.store.Update(id, map[string]interface{}{"status": status})
	if err != nil {
		logger.WithError(err).Error("hiring request status change failed")
		return err
	}
	logger.Info("hiring request status changed")
	return nil
}

func (i impl) getRec(id string) (*dbmodels.HiringRequest, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, models.ErrNotFound
	}
	return rec, nil
}

func (i impl) checkRecruiter(recruiterID string) error {
	user, err := i.userStore.GetByID(recruiterID)
	if err != nil {
		return err
	}
	if user == nil {
		return models.ErrNotFound
	}
	return nil
}

func (i impl) notifyRecruiter(recruiterID, authorID, jobTitle, requestID string) {
	if i.notification == nil {
		return
	}
	i.notification.Notify(recruiterID, authorID, models.NotificationTypeRequestAssigned,
		"New hiring request assigned",
		fmt.Sprintf("You were assigned as recruiter for %q", jobTitle),
		map[string]string{"hiring_request_id": requestID})
}
