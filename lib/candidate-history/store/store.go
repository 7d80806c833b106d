package candidatehistorystore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbmodels "recruit-track-backend/models/db"
)

// Provider exposes create and list only, history rows are immutable.
type Provider interface {
	Create(rec dbmodels.CandidateStatusHistory) (id string, err error)
	ListByCandidate(candidateID string) (list []dbmodels.CandidateStatusHistory, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.CandidateStatusHistory) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListByCandidate(candidateID string) (list []dbmodels.CandidateStatusHistory, err error) {
	list = []dbmodels.CandidateStatusHistory{}
	err = i.db.
		Where("candidate_id = ?", candidateID).
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
