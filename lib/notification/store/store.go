package notificationstore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "recruit-track-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Notification) (id string, err error)
	GetByID(id string) (rec *dbmodels.Notification, err error)
	ListByUser(userID string, page, limit int) (list []dbmodels.Notification, err error)
	ListUnread(userID string) (list []dbmodels.Notification, err error)
	CountUnread(userID string) (count int64, err error)
	MarkRead(userID, id string) error
	MarkAllRead(userID string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Notification) (id string, err error) {
	err = i.db.
		Omit("CreatedBy").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (rec *dbmodels.Notification, err error) {
	err = i.db.Model(dbmodels.Notification{}).
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) ListByUser(userID string, page, limit int) (list []dbmodels.Notification, err error) {
	list = []dbmodels.Notification{}
	tx := i.db.
		Model(dbmodels.Notification{}).
		Where("user_id = ?", userID).
		Order("created_at desc")
	offset := (page - 1) * limit
	tx.Limit(limit).Offset(offset)
	err = tx.Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListUnread(userID string) (list []dbmodels.Notification, err error) {
	list = []dbmodels.Notification{}
	err = i.db.
		Model(dbmodels.Notification{}).
		Where("user_id = ?", userID).
		Where("is_read = ?", false).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) CountUnread(userID string) (count int64, err error) {
	err = i.db.
		Model(dbmodels.Notification{}).
		Where("user_id = ?", userID).
		Where("is_read = ?", false).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) MarkRead(userID, id string) error {
	now := time.Now()
	tx := i.db.
		Model(&dbmodels.Notification{}).
		Where("id = ?", id).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{"is_read": true, "read_at": &now})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("notification not found")
	}
	return nil
}

func (i impl) MarkAllRead(userID string) error {
	now := time.Now()
	return i.db.
		Model(&dbmodels.Notification{}).
		Where("user_id = ?", userID).
		Where("is_read = ?", false).
		Updates(map[string]interface{}{"is_read": true, "read_at": &now}).
		Error
}
