package usersstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "recruit-track-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.User) (string, error)
	Update(userID string, updMap map[string]interface{}) error
	Delete(userID string) error
	GetList(page, limit int) (userList []dbmodels.User, err error)
	GetByID(userID string) (rec *dbmodels.User, err error)
	FindByUsername(username string) (rec *dbmodels.User, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.User) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(userID string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.User{}).
		Where("id = ?", userID).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("user not found")
	}
	return nil
}

func (i impl) Delete(userID string) error {
	return i.db.
		Where("id = ?", userID).
		Delete(&dbmodels.User{}).
		Error
}

func (i impl) GetList(page, limit int) (userList []dbmodels.User, err error) {
	tx := i.db.Model(dbmodels.User{})
	i.setPage(tx, page, limit)
	err = tx.
		Order("username").
		Find(&userList).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return userList, nil
}

func (i impl) GetByID(userID string) (rec *dbmodels.User, err error) {
	err = i.db.Model(dbmodels.User{}).
		Where("id = ?", userID).
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

func (i impl) FindByUsername(username string) (rec *dbmodels.User, err error) {
	err = i.db.Model(dbmodels.User{}).
		Where("username = ?", username).
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

func (i impl) setPage(tx *gorm.DB, page, limit int) {
	offset := (page - 1) * limit
	tx.Limit(limit).Offset(offset)
}
