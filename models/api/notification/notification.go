package notificationapimodels

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"

	"recruit-track-backend/models"
	dbmodels "recruit-track-backend/models/db"
)

type NotificationCreateData struct {
	UserID  string                  `json:"user_id"`
	Type    models.NotificationType `json:"type"`
	Title   string                  `json:"title"`
	Message string                  `json:"message"`
	Payload json.RawMessage         `json:"payload,omitempty"`
}

func (d NotificationCreateData) Validate() error {
	if d.UserID == "" {
		return errors.New("target user is required")
	}
	if d.Title == "" {
		return errors.New("title is required")
	}
	return nil
}

type NotificationView struct {
	ID        string                  `json:"id"`
	Type      models.NotificationType `json:"type"`
	Title     string                  `json:"title"`
	Message   string                  `json:"message"`
	Payload   json.RawMessage         `json:"payload,omitempty"`
	IsRead    bool                    `json:"is_read"`
	ReadAt    *time.Time              `json:"read_at,omitempty"`
	CreatedAt time.Time               `json:"created_at"`
}

func Convert(rec dbmodels.Notification) NotificationView {
	return NotificationView{
		ID:        rec.ID,
		Type:      rec.Type,
		Title:     rec.Title,
		Message:   rec.Message,
		Payload:   json.RawMessage(rec.Payload),
		IsRead:    rec.IsRead,
		ReadAt:    rec.ReadAt,
		CreatedAt: rec.CreatedAt,
	}
}

type UnreadCount struct {
	Unread int64 `json:"unread"`
}
