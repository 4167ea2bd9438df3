package authController

import (
	"errors"
	"strings"

	"learnhub/apierr"
	"learnhub/auth"
	"learnhub/config"
	"learnhub/logger"
	"learnhub/middleware"
	"learnhub/models"
	"learnhub/validators"
	authValidator "learnhub/validators/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Controller struct {
	db     *gorm.DB
	issuer *auth.Issuer
	cfg    *config.Config
	log    *logger.Logger
}

func New(db *gorm.DB, issuer *auth.Issuer, cfg *config.Config, log *logger.Logger) *Controller {
	return &Controller{db: db, issuer: issuer, cfg: cfg, log: log}
}

// TokenResponse is the OAuth2-style password grant response.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresAt   int64  `json:"expires_at"`
}

// Token exchanges an email and password for a bearer token.
func (ctl *Controller) Token(c *fiber.Ctx) error {
	reqData := validators.Get[authValidator.LoginRequest](c, "validatedLogin")

	var user models.User
	err := ctl.db.WithContext(c.UserContext()).Where("email = ?", reqData.Username).First(&user).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return apierr.Internal(err)
	}
	// Same answer for an unknown email and a wrong password.
	if err != nil || !auth.CheckPassword(user.HashedPassword, reqData.Password) {
		return apierr.Unauthorized("Incorrect email or password")
	}
	if !user.IsActive {
		return apierr.Unauthorized("Inactive user")
	}

	token, expiresAt, err := ctl.issuer.Issue(&user)
	if err != nil {
		return apierr.Internal(err)
	}

	ctl.log.Info("User logged in", "user_id", user.ID, "ip", c.IP())
	return middleware.JsonResponse(c, fiber.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt.Unix(),
	})
}

// Register creates an active, non-admin account.
func (ctl *Controller) Register(c *fiber.Ctx) error {
	reqData := validators.Get[authValidator.RegisterRequest](c, "validatedRegister")
	db := ctl.db.WithContext(c.UserContext())

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", reqData.Email).Count(&count).Error; err != nil {
		return apierr.Internal(err)
	}
	if count > 0 {
		return apierr.Conflict("Email already registered")
	}

	hashed, err := auth.HashPassword(reqData.Password, ctl.cfg.SaltRound)
	if err != nil {
		return apierr.Internal(err)
	}

	user := models.User{
		Email:          reqData.Email,
		FullName:       strings.TrimSpace(reqData.FullName),
		HashedPassword: hashed,
		IsActive:       true,
		IsAdmin:        false,
	}
	if err := db.Create(&user).Error; err != nil {
		return apierr.FromDB(err, "Email already registered", "")
	}

	ctl.log.Info("User registered", "user_id", user.ID)
	return middleware.JsonResponse(c, fiber.StatusCreated, user)
}
