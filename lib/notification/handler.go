package notificationhandler

import (
	"encoding/json"

	log "github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"recruit-track-backend/config"
	"recruit-track-backend/db"
	notificationstore "recruit-track-backend/lib/notification/store"
	"recruit-track-backend/lib/smtp"
	usersstore "recruit-track-backend/lib/users/store"
	connectionhub "recruit-track-backend/lib/ws/hub/connection-hub"
	"recruit-track-backend/models"
	notificationapimodels "recruit-track-backend/models/api/notification"
	dbmodels "recruit-track-backend/models/db"
	wsmodels "recruit-track-backend/models/ws"
)

type Provider interface {
	Create(createdByID string, data notificationapimodels.NotificationCreateData) (id string, err error)
	Notify(userID, createdByID string, notifType models.NotificationType, title, message string, payload interface{})
	ListMine(userID string, page, limit int) (list []notificationapimodels.NotificationView, err error)
	UnreadCount(userID string) (count int64, err error)
	MarkRead(userID, id string) error
	MarkAllRead(userID string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:      notificationstore.NewInstance(db.DB),
		userStore:  usersstore.NewInstance(db.DB),
		hub:        connectionhub.Instance,
		withEmails: config.Conf.Smtp.Host != "",
	}
}

// NewHandlerWithDB wires the handler onto an explicit connection, used by tests.
// Websocket and email fan-out stay disabled.
func NewHandlerWithDB(database *gorm.DB) Provider {
	return impl{
		store:     notificationstore.NewInstance(database),
		userStore: usersstore.NewInstance(database),
	}
}

type impl struct {
	store      notificationstore.Provider
	userStore  usersstore.Provider
	hub        connectionhub.Provider
	withEmails bool
}

func (i impl) Create(createdByID string, data notificationapimodels.NotificationCreateData) (id string, err error) {
	logger := log.WithField("user_id", data.UserID).
		WithField("type", data.Type)
	notifType := data.Type
	if notifType == "" {
		notifType = models.NotificationTypeSystem
	}
	rec := dbmodels.Notification{
		UserID:  data.UserID,
		Type:    notifType,
		Title:   data.Title,
		Message: data.Message,
		Payload: datatypes.JSON(data.Payload),
	}
	if createdByID != "" {
		rec.CreatedByID = &createdByID
	}
	id, err = i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("notification creation failed")
		return "", err
	}
	i.fanOut(rec)
	return id, nil
}

// Notify is the fire-and-forget path used by the other handlers, failures
// are logged and never propagated to the calling operation.
func (i impl) Notify(userID, createdByID string, notifType models.NotificationType, title, message string, payload interface{}) {
	logger := log.WithField("user_id", userID).
		WithField("type", notifType)
	var body json.RawMessage
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			logger.WithError(err).Error("notification payload serialization failed")
			return
		}
		body = data
	}
	_, err := i.Create(createdByID, notificationapimodels.NotificationCreateData{
		UserID:  userID,
		Type:    notifType,
		Title:   title,
		Message: message,
		Payload: body,
	})
	if err != nil {
		logger.WithError(err).Error("notification delivery failed")
	}
}

func (i impl) ListMine(userID string, page, limit int) ([]notificationapimodels.NotificationView, error) {
	list, err := i.store.ListByUser(userID, page, limit)
	if err != nil {
		log.WithError(err).Error("notification list failed")
		return nil, err
	}
	result := make([]notificationapimodels.NotificationView, 0, len(list))
	for _, rec := range list {
		result = append(result, notificationapimodels.Convert(rec))
	}
	return result, nil
}

func (i impl) UnreadCount(userID string) (int64, error) {
	return i.store.CountUnread(userID)
}

func (i impl) MarkRead(userID, id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil || rec.UserID != userID {
		return models.ErrNotFound
	}
	return i.store.MarkRead(userID, id)
}

func (i impl) MarkAllRead(userID string) error {
	return i.store.MarkAllRead(userID)
}

func (i impl) fanOut(rec dbmodels.Notification) {
	logger := log.WithField("user_id", rec.UserID)
	if i.hub != nil {
		i.hub.SendMessage(wsmodels.ServerMessage{
			ToUserID: rec.UserID,
			Type:     string(rec.Type),
			Title:    rec.Title,
			Message:  rec.Message,
			Payload:  json.RawMessage(rec.Payload),
		})
	}
	if !i.withEmails {
		return
	}
	user, err := i.userStore.GetByID(rec.UserID)
	if err != nil {
		logger.WithError(err).Error("notification email skipped, user lookup failed")
		return
	}
	if user == nil || user.Email == "" {
		return
	}
	err = smtp.Instance.SendEMail(config.Conf.Smtp.Sender, user.Email, rec.Message, rec.Title)
	if err != nil {
		logger.WithError(err).Error("notification email delivery failed")
	}
}
