package interviewstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbmodels "recruit-track-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Interview) (id string, err error)
	GetByID(id string) (rec *dbmodels.Interview, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	List(candidateID string) (list []dbmodels.Interview, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Interview) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Interview, error) {
	rec := dbmodels.Interview{}
	err := i.db.
		Where("id = ?", id).
		Preload(clause.Associations).
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

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Interview{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("interview not found")
	}
	return nil
}

func (i impl) Delete(id string) error {
	rec := dbmodels.Interview{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	err := i.db.
		Delete(&rec).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) List(candidateID string) (list []dbmodels.Interview, err error) {
	list = []dbmodels.Interview{}
	tx := i.db.
		Preload(clause.Associations).
		Order("scheduled_at desc")
	if candidateID != "" {
		tx = tx.Where("candidate_id = ?", candidateID)
	}
	err = tx.Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}
