package dbmodels

import (
	"time"

	"recruit-track-backend/models"
)

type Interview struct {
	BaseModel
	CandidateID   string     `gorm:"type:varchar(36);index"`
	Candidate     *Candidate `gorm:"foreignKey:CandidateID"`
	Type          models.InterviewType `gorm:"type:varchar(50)"`
	ScheduledAt   time.Time            `gorm:"index"`
	Location      string               `gorm:"type:varchar(255)"`
	InterviewerID *string              `gorm:"type:varchar(36)"`
	Interviewer   *User                `gorm:"foreignKey:InterviewerID"`
	Result        models.InterviewResult `gorm:"type:varchar(50)"`
	Feedback      string
}
