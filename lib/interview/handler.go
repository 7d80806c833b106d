package interviewhandler

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"recruit-track-backend/db"
	candidatestore "recruit-track-backend/lib/candidate/store"
	interviewstore "recruit-track-backend/lib/interview/store"
	notificationhandler "recruit-track-backend/lib/notification"
	usersstore "recruit-track-backend/lib/users/store"
	"recruit-track-backend/models"
	interviewapimodels "recruit-track-backend/models/api/interview"
	dbmodels "recruit-track-backend/models/db"
)

type Provider interface {
	Create(userID string, data interviewapimodels.InterviewData) (id string, err error)
	GetByID(id string) (view interviewapimodels.InterviewView, err error)
	Update(id string, data interviewapimodels.InterviewData) error
	Delete(id string) error
	List(candidateID string) (list []interviewapimodels.InterviewView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:          interviewstore.NewInstance(db.DB),
		candidateStore: candidatestore.NewInstance(db.DB),
		userStore:      usersstore.NewInstance(db.DB),
		notification:   notificationhandler.Instance,
	}
}

// NewHandlerWithDB wires the handler onto an explicit connection, used by tests.
func NewHandlerWithDB(database *gorm.DB, notification notificationhandler.Provider) Provider {
	return impl{
		store:          interviewstore.NewInstance(database),
		candidateStore: candidatestore.NewInstance(database),
		userStore:      usersstore.NewInstance(database),
		notification:   notification,
	}
}

type impl struct {
	store          interviewstore.Provider
	candidateStore candidatestore.Provider
	userStore      usersstore.Provider
	notification   notificationhandler.Provider
}

func (i impl) Create(userID string, data interviewapimodels.InterviewData) (id string, err error) {
	logger := log.WithField("candidate_id", data.CandidateID).
		WithField("type", data.Type)
	candidate, err := i.candidateStore.GetByID(data.CandidateID)
	if err != nil {
		return "", err
	}
	if candidate == nil {
		return "", models.ErrNotFound
	}
	rec := dbmodels.Interview{
		CandidateID: data.CandidateID,
		Type:        data.Type,
		ScheduledAt: data.ScheduledAt,
		Location:    data.Location,
		Result:      data.Result,
		Feedback:    data.Feedback,
	}
	if data.InterviewerID != "" {
		if err = i.checkInterviewer(data.InterviewerID); err != nil {
			return "", err
		}
		rec.InterviewerID = &data.InterviewerID
	}
	id, err = i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("interview creation failed")
		return "", err
	}
	logger.WithField("rec_id", id).Info("interview scheduled")
	if rec.InterviewerID != nil {
		i.notifyInterviewer(*rec.InterviewerID, userID, candidate.GetFullName(), id, rec)
	}
	return id, nil
}

func (i impl) GetByID(id string) (interviewapimodels.InterviewView, error) {
	rec, err := i.getRec(id)
	if err != nil {
		return interviewapimodels.InterviewView{}, err
	}
	return interviewapimodels.Convert(*rec), nil
}

func (i impl) Update(id string, data interviewapimodels.InterviewData) error {
	logger := log.WithField("rec_id", id)
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"type":         data.Type,
		"scheduled_at": data.ScheduledAt,
		"location":     data.Location,
		"result":       data.Result,
		"feedback":     data.Feedback,
	}
	if data.InterviewerID != "" && (rec.InterviewerID == nil || *rec.InterviewerID != data.InterviewerID) {
		if err = i.checkInterviewer(data.InterviewerID); err != nil {
			return err
		}
		updMap["interviewer_id"] = data.InterviewerID
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		logger.WithError(err).Error("interview update failed")
		return err
	}
	logger.Info("interview updated")
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
		logger.WithError(err).Error("interview deletion failed")
		return err
	}
	logger.Info("interview deleted")
	return nil
}

func (i impl) List(candidateID string) ([]interviewapimodels.InterviewView, error) {
	list, err := i.store.List(candidateID)
	if err != nil {
		log.WithError(err).Error("interview list failed")
		return nil, err
	}
	result := make([]interviewapimodels.InterviewView, 0, len(list))
	for _, rec := range list {
		result = append(result, interviewapimodels.Convert(rec))
	}
	return result, nil
}

func (i impl) getRec(id string) (*dbmodels.Interview, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, models.ErrNotFound
	}
	return rec, nil
}

func (i impl) checkInterviewer(userID string) error {
	user, err := i.userStore.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return models.ErrNotFound
	}
	return nil
}

func (i impl) notifyInterviewer(interviewerID, authorID, candidateName, interviewID string, rec dbmodels.Interview) {
	if i.notification == nil {
		return
	}
	i.notification.Notify(interviewerID, authorID, models.NotificationTypeInterviewPlaned,
		"Interview scheduled",
		fmt.Sprintf("%s interview with %s on %s", rec.Type.ToHuman(), candidateName, rec.ScheduledAt.Format("02.01.2006 15:04")),
		map[string]string{"interview_id": interviewID, "candidate_id": rec.CandidateID})
}
