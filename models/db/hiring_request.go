package dbmodels

import (
	"recruit-track-backend/models"
)

type HiringRequest struct {
	BaseModel
	JobTitle      string `gorm:"type:varchar(255)"`
	Service       string `gorm:"type:varchar(255)"`
	WorkLocation  string `gorm:"type:varchar(255)"`
	ContractType  string `gorm:"type:varchar(100)"`
	Justification string
	HeadCount     int
	RecruiterID   *string `gorm:"type:varchar(36)"`
	Recruiter     *User   `gorm:"foreignKey:RecruiterID"`
	Status        models.RequestStatus `gorm:"type:varchar(50);index"`
}
