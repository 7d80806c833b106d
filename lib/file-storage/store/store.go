package filesdbstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "recruit-track-backend/models/db"
)

type Provider interface {
	SaveFile(rec dbmodels.FileStorage) (id string, err error)
	GetByID(id string) (rec *dbmodels.FileStorage, err error)
	GetLastByType(candidateID string, fileType dbmodels.FileType) (rec *dbmodels.FileStorage, err error)
	GetListByType(candidateID string, fileType dbmodels.FileType) (list []dbmodels.FileStorage, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{db: DB}
}

type impl struct {
	db *gorm.DB
}

func (i impl) SaveFile(rec dbmodels.FileStorage) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.FileStorage, error) {
	rec := dbmodels.FileStorage{}
	err := i.db.
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) GetLastByType(candidateID string, fileType dbmodels.FileType) (*dbmodels.FileStorage, error) {
	rec := dbmodels.FileStorage{}
	err := i.db.
		Where("candidate_id = ? AND type = ?", candidateID, fileType).
		Order("created_at desc").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) GetListByType(candidateID string, fileType dbmodels.FileType) (list []dbmodels.FileStorage, err error) {
	err = i.db.
		Model(&dbmodels.FileStorage{}).
		Where("candidate_id = ? AND type = ?", candidateID, fileType).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return list, nil
}
