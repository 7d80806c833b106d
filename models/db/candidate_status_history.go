package dbmodels

import (
	"recruit-track-backend/models"
)

// CandidateStatusHistory is an append-only audit trail, one row per
// observed status transition. Rows are never updated or deleted.
type CandidateStatusHistory struct {
	BaseModel
	CandidateID   string     `gorm:"type:varchar(36);index"`
	Candidate     *Candidate `gorm:"foreignKey:CandidateID"`
	OldStatus     models.CandidateStatus `gorm:"type:varchar(50)"`
	NewStatus     models.CandidateStatus `gorm:"type:varchar(50)"`
	Label         string                 `gorm:"type:varchar(255)"`
	ChangedByID   *string                `gorm:"type:varchar(36)"`
	ChangedBy     *User                  `gorm:"foreignKey:ChangedByID"`
	ChangedByName string                 `gorm:"type:varchar(255)"`
	Comment       string
}
