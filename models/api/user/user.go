package userapimodels

import (
	"time"

	"github.com/pkg/errors"

	"recruit-track-backend/models"
)

type UserView struct {
	ID        string          `json:"id"`
	Username  string          `json:"username"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Email     string          `json:"email"`
	Role      models.UserRole `json:"role"`
	RoleName  string          `json:"role_name"`
	IsActive  bool            `json:"is_active"`
	LastLogin time.Time       `json:"last_login"`
	CreatedAt time.Time       `json:"created_at"`
}

type UserCreateData struct {
	Username  string          `json:"username"`
	Password  string          `json:"password"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Email     string          `json:"email"`
	Role      models.UserRole `json:"role"`
}

func (d UserCreateData) Validate() error {
	if d.Username == "" {
		return errors.New("username is required")
	}
	if d.Password == "" {
		return errors.New("password is required")
	}
	if _, ok := d.Role.Normalize(); !ok {
		return errors.Errorf("unknown role (%v)", d.Role)
	}
	return nil
}

type UserEditData struct {
	Password  string          `json:"password"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Email     string          `json:"email"`
	Role      models.UserRole `json:"role"`
	IsActive  *bool           `json:"is_active"`
}

func (d UserEditData) Validate() error {
	if d.Role != "" {
		if _, ok := d.Role.Normalize(); !ok {
			return errors.Errorf("unknown role (%v)", d.Role)
		}
	}
	return nil
}
