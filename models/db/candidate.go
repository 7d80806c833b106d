package dbmodels

import (
	"fmt"
	"time"

	"recruit-track-backend/models"
)

type Candidate struct {
	BaseModel
	FirstName       string `gorm:"type:varchar(255)"`
	LastName        string `gorm:"type:varchar(255)"`
	Email           string `gorm:"type:varchar(255)"`
	Phone           string `gorm:"type:varchar(50)"`
	Address         string
	BirthDate       time.Time
	Profession      string `gorm:"type:varchar(255)"`
	ExperienceYears int
	Salary          int
	Comment         string
	Status          models.CandidateStatus `gorm:"type:varchar(50);index"`
	HiringRequestID *string                `gorm:"type:varchar(36);index"`
	HiringRequest   *HiringRequest         `gorm:"foreignKey:HiringRequestID"`
}

func (c Candidate) GetFullName() string {
	return fmt.Sprintf("%s %s", c.FirstName, c.LastName)
}
