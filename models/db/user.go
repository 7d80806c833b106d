package dbmodels

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"recruit-track-backend/models"
	userapimodels "recruit-track-backend/models/api/user"
)

type User struct {
	BaseModel
	Username  string          `gorm:"type:varchar(150);uniqueIndex"`
	Password  string          `gorm:"type:varchar(128)"`
	FirstName string          `gorm:"type:varchar(150)"`
	LastName  string          `gorm:"type:varchar(150)"`
	Email     string          `gorm:"type:varchar(255)"`
	Role      models.UserRole `gorm:"type:varchar(50)"`
	IsActive  bool
	LastLogin time.Time
}

func (u *User) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	return nil
}

func (u User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain)) == nil
}

func (u User) GetFullName() string {
	if u.FirstName == "" && u.LastName == "" {
		return u.Username
	}
	return fmt.Sprintf("%s %s", u.FirstName, u.LastName)
}

// ToModel builds the API view, the password hash is never serialized.
func (u User) ToModel() userapimodels.UserView {
	return userapimodels.UserView{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      u.Role,
		RoleName:  u.Role.ToHuman(),
		IsActive:  u.IsActive,
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
	}
}
