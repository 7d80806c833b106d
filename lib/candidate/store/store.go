package candidatestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	candidateapimodels "recruit-track-backend/models/api/candidate"
	dbmodels "recruit-track-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Candidate) (id string, err error)
	GetByID(id string) (rec *dbmodels.Candidate, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	List(filter candidateapimodels.CandidateFilter) (list []dbmodels.Candidate, err error)
	ListAll(filter candidateapimodels.CandidateFilter) (list []dbmodels.Candidate, err error)
	ListCount(filter candidateapimodels.CandidateFilter) (count int64, err error)
	ListByRequest(hiringRequestID string) (list []dbmodels.Candidate, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Candidate) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Candidate, error) {
	rec := dbmodels.Candidate{}
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
		Model(&dbmodels.Candidate{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("candidate not found")
	}
	return nil
}

func (i impl) Delete(id string) error {
	rec := dbmodels.Candidate{
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

func (i impl) List(filter candidateapimodels.CandidateFilter) (list []dbmodels.Candidate, err error) {
	list = []dbmodels.Candidate{}
	tx := i.applyFilter(filter).
		Preload(clause.Associations).
		Order("created_at desc")
	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	tx = tx.Offset(offset).Limit(limit)
	err = tx.Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

// ListAll ignores the filter paging, the export builders need every
// matching row.
func (i impl) ListAll(filter candidateapimodels.CandidateFilter) (list []dbmodels.Candidate, err error) {
	list = []dbmodels.Candidate{}
	err = i.applyFilter(filter).
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

func (i impl) ListCount(filter candidateapimodels.CandidateFilter) (count int64, err error) {
	err = i.applyFilter(filter).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) ListByRequest(hiringRequestID string) (list []dbmodels.Candidate, err error) {
	list = []dbmodels.Candidate{}
	err = i.db.
		Where("hiring_request_id = ?", hiringRequestID).
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

func (i impl) applyFilter(filter candidateapimodels.CandidateFilter) *gorm.DB {
	tx := i.db.Model(&dbmodels.Candidate{})
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if filter.HiringRequestID != "" {
		tx = tx.Where("hiring_request_id = ?", filter.HiringRequestID)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		tx = tx.Where("first_name LIKE ? OR last_name LIKE ? OR profession LIKE ?", like, like, like)
	}
	return tx
}
