package middleware

import (
	"errors"
	"strings"

	"learnhub/apierr"
	"learnhub/auth"
	"learnhub/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const userLocal = "user"

// Auth resolves bearer tokens to users.
type Auth struct {
	db     *gorm.DB
	issuer *auth.Issuer
}

func NewAuth(db *gorm.DB, issuer *auth.Issuer) *Auth {
	return &Auth{db: db, issuer: issuer}
}

// Required rejects the request unless it carries a valid token of an active user, and stores
// that user in the request context.
func (a *Auth) Required(c *fiber.Ctx) error {
	user, err := a.resolve(c)
	if err != nil {
		return err
	}
	if user == nil {
		return apierr.Unauthorized("Not authenticated")
	}
	c.Locals(userLocal, user)
	return c.Next()
}

// Optional attaches the user when a valid token is present and otherwise carries on anonymously.
func (a *Auth) Optional(c *fiber.Ctx) error {
	if user, err := a.resolve(c); err == nil && user != nil {
		c.Locals(userLocal, user)
	}
	return c.Next()
}

// resolve returns (nil, nil) when no Authorization header is present.
func (a *Auth) resolve(c *fiber.Ctx) (*models.User, error) {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return nil, nil
	}

	// The token should be prefixed with "Bearer "
	if len(authHeader) < len("Bearer ") || !strings.EqualFold(authHeader[:len("Bearer ")], "Bearer ") {
		return nil, apierr.Unauthorized("Invalid Authorization header format")
	}
	tokenString := strings.TrimSpace(authHeader[len("Bearer "):])

	claims, err := a.issuer.Parse(tokenString)
	if err != nil {
		return nil, apierr.Unauthorized("Could not validate credentials")
	}

	var user models.User
	if err := a.db.WithContext(c.UserContext()).First(&user, claims.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.Unauthorized("Could not validate credentials")
		}
		return nil, apierr.Internal(err)
	}
	if !user.IsActive {
		return nil, apierr.Unauthorized("Inactive user")
	}
	return &user, nil
}

// CurrentUser returns the user stored by Required or Optional, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userLocal).(*models.User)
	return user
}
