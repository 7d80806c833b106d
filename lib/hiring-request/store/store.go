package hiringrequeststore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"recruit-track-backend/models"
	hiringrequestapimodels "recruit-track-backend/models/api/hiring-request"
	dbmodels "recruit-track-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.HiringRequest) (id string, err error)
	GetByID(id string) (rec *dbmodels.HiringRequest, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	List(filter hiringrequestapimodels.RequestFilter) (list []dbmodels.HiringRequest, err error)
	ListByStatuses(statuses []models.RequestStatus) (list []dbmodels.HiringRequest, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.HiringRequest) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.HiringRequest, error) {
	rec := dbmodels.HiringRequest{}
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
		Model(&dbmodels.HiringRequest{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("hiring request not found")
	}
	return nil
}

// Delete removes the request only, dependent candidates keep their
// reference and read back with a nil association.
func (i impl) Delete(id string) error {
	rec := dbmodels.HiringRequest{
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

func (i impl) List(filter hiringrequestapimodels.RequestFilter) (list []dbmodels.HiringRequest, err error) {
	list = []dbmodels.HiringRequest{}
	tx := i.db.
		Preload(clause.Associations).
		Order("created_at desc")
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		tx = tx.Where("job_title LIKE ?", "%"+filter.Search+"%")
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

func (i impl) ListByStatuses(statuses []models.RequestStatus) (list []dbmodels.HiringRequest, err error) {
	list = []dbmodels.HiringRequest{}
	err = i.db.
		Where("status IN ?", statuses).
		Preload(clause.Associations).
		Order("created_at desc").
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
