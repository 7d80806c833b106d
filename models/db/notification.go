package dbmodels

import (
	"time"

	"gorm.io/datatypes"

	"recruit-track-backend/models"
)

type Notification struct {
	BaseModel
	UserID      string `gorm:"type:varchar(36);index:idx_notification_user"`
	Type        models.NotificationType `gorm:"type:varchar(100)"`
	Title       string                  `gorm:"type:varchar(255)"`
	Message     string
	Payload     datatypes.JSON `gorm:"type:jsonb"`
	IsRead      bool           `gorm:"index:idx_notification_user"`
	ReadAt      *time.Time
	CreatedByID *string `gorm:"type:varchar(36)"`
	CreatedBy   *User   `gorm:"foreignKey:CreatedByID"`
}
