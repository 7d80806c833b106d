package authhandler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"recruit-track-backend/db"
	usersstore "recruit-track-backend/lib/users/store"
	authutils "recruit-track-backend/lib/utils/auth-utils"
	"recruit-track-backend/models"
	authapimodels "recruit-track-backend/models/api/auth"
	userapimodels "recruit-track-backend/models/api/user"
)

// ErrInvalidCredentials is shared by the unknown-user and wrong-password
// paths so login failures are not distinguishable.
var ErrInvalidCredentials = errors.New("invalid credentials")

type Provider interface {
	Login(ctx *fiber.Ctx, username, password string) (resp authapimodels.LoginResponse, err error)
	Logout(ctx *fiber.Ctx)
	Me(ctx *fiber.Ctx) (view userapimodels.UserView, err error)
	Refresh(ctx *fiber.Ctx) error
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

func (i impl) Login(ctx *fiber.Ctx, username, password string) (authapimodels.LoginResponse, error) {
	logger := log.WithField("username", username)
	user, err := i.store.FindByUsername(username)
	if err != nil {
		logger.WithError(err).Error("user lookup failed")
		return authapimodels.LoginResponse{}, err
	}
	if user == nil {
		logger.Debug("login rejected, unknown username")
		return authapimodels.LoginResponse{}, ErrInvalidCredentials
	}
	if !user.CheckPassword(password) {
		logger.Debug("login rejected, password check failed")
		return authapimodels.LoginResponse{}, ErrInvalidCredentials
	}
	if err = i.issueCookies(ctx, user.ID, user.GetFullName(), user.Role); err != nil {
		logger.WithError(err).Error("token signing failed")
		return authapimodels.LoginResponse{}, err
	}
	err = i.store.Update(user.ID, map[string]interface{}{"last_login": time.Now()})
	if err != nil {
		logger.WithError(err).Error("last login update failed")
	}
	return authapimodels.LoginResponse{
		ID:       user.ID,
		Username: user.Username,
		Role:     string(user.Role),
	}, nil
}

func (i impl) Logout(ctx *fiber.Ctx) {
	authutils.ClearAuthCookies(ctx)
}

func (i impl) Me(ctx *fiber.Ctx) (userapimodels.UserView, error) {
	claims := authutils.GetClaims(ctx)
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return userapimodels.UserView{}, errors.New("no subject claim")
	}
	user, err := i.store.GetByID(sub)
	if err != nil {
		return userapimodels.UserView{}, err
	}
	if user == nil {
		return userapimodels.UserView{}, models.ErrNotFound
	}
	return user.ToModel(), nil
}

// Refresh reissues the cookie pair from a valid refresh token cookie.
func (i impl) Refresh(ctx *fiber.Ctx) error {
	refreshToken := ctx.Cookies(authutils.RefreshTokenCookie)
	if refreshToken == "" {
		return ErrInvalidCredentials
	}
	claims, err := authutils.ParseToken(refreshToken)
	if err != nil {
		return ErrInvalidCredentials
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return ErrInvalidCredentials
	}
	user, err := i.store.GetByID(sub)
	if err != nil {
		return err
	}
	if user == nil || !user.IsActive {
		return ErrInvalidCredentials
	}
	return i.issueCookies(ctx, user.ID, user.GetFullName(), user.Role)
}

func (i impl) issueCookies(ctx *fiber.Ctx, userID, name string, role models.UserRole) error {
	accessToken, err := authutils.GetToken(userID, name, role)
	if err != nil {
		return err
	}
	refreshToken, err := authutils.GetRefreshToken(userID, name)
	if err != nil {
		return err
	}
	authutils.SetAuthCookies(ctx, accessToken, refreshToken)
	return nil
}
