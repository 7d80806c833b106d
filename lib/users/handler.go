package usershandler

import (
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"recruit-track-backend/db"
	usersstore "recruit-track-backend/lib/users/store"
	"recruit-track-backend/models"
	userapimodels "recruit-track-backend/models/api/user"
	dbmodels "recruit-track-backend/models/db"
)

type Provider interface {
	Create(data userapimodels.UserCreateData) (view userapimodels.UserView, err error)
	GetByID(id string) (view userapimodels.UserView, err error)
	Update(id string, data userapimodels.UserEditData) error
	Delete(id string) error
	List(page, limit int) (list []userapimodels.UserView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: usersstore.NewInstance(db.DB),
	}
}

// NewHandlerWithDB wires the handler onto an explicit connection, used by tests.
func NewHandlerWithDB(database *gorm.DB) Provider {
	return impl{
		store: usersstore.NewInstance(database),
	}
}

type impl struct {
	store usersstore.Provider
}

func (i impl) Create(data userapimodels.UserCreateData) (userapimodels.UserView, error) {
	logger := log.WithField("username", data.Username)
	role, _ := data.Role.Normalize()
	rec := dbmodels.User{
		Username:  data.Username,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Email:     data.Email,
		Role:      role,
		IsActive:  true,
	}
	if err := rec.SetPassword(data.Password); err != nil {
		logger.WithError(err).Error("password hashing failed")
		return userapimodels.UserView{}, err
	}
	id, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("user creation failed")
		return userapimodels.UserView{}, err
	}
	logger.WithField("rec_id", id).Info("user created")
	created, err := i.getRec(id)
	if err != nil {
		return userapimodels.UserView{}, err
	}
	return created.ToModel(), nil
}

func (i impl) GetByID(id string) (userapimodels.UserView, error) {
	rec, err := i.getRec(id)
	if err != nil {
		return userapimodels.UserView{}, err
	}
	return rec.ToModel(), nil
}

func (i impl) Update(id string, data userapimodels.UserEditData) error {
	logger := log.WithField("rec_id", id)
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{}
	if data.FirstName != "" {
		updMap["first_name"] = data.FirstName
	}
	if data.LastName != "" {
		updMap["last_name"] = data.LastName
	}
	if data.Email != "" {
		updMap["email"] = data.Email
	}
	if data.Role != "" {
		role, _ := data.Role.Normalize()
		updMap["role"] = role
	}
	if data.IsActive != nil {
		updMap["is_active"] = *data.IsActive
	}
	if data.Password != "" {
		if err := rec.SetPassword(data.Password); err != nil {
			logger.WithError(err).Error("password hashing failed")
			return err
		}
		updMap["password"] = rec.Password
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		logger.WithError(err).Error("user update failed")
		return err
	}
	logger.Info("user updated")
	return nil
}

func (i impl) Delete(id string) error {
	logger := log.WithField("rec_id", id)
	_, err := i.getRec(id)
	if err != nil {
		return err
	}
	err = i.store.Delete(id)
	if err != nil {
		logger.WithError(err).Error("user deletion failed")
		return err
	}
	logger.Info("user deleted")
	return nil
}

func (i impl) List(page, limit int) ([]userapimodels.UserView, error) {
	list, err := i.store.GetList(page, limit)
	if err != nil {
		log.WithError(err).Error("user list failed")
		return nil, err
	}
	result := make([]userapimodels.UserView, 0, len(list))
	for _, rec := range list {
		result = append(result, rec.ToModel())
	}
	return result, nil
}

func (i impl) getRec(id string) (*dbmodels.User, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, models.ErrNotFound
	}
	return rec, nil
}
