package userController

import (
	"errors"

	"learnhub/apierr"
	"learnhub/auth"
	"learnhub/config"
	"learnhub/logger"
	"learnhub/middleware"
	"learnhub/models"
	"learnhub/utils"
	"learnhub/validators"
	userValidator "learnhub/validators/userValidator"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const emailTaken = "Email already registered"

type Controller struct {
	db  *gorm.DB
	cfg *config.Config
	log *logger.Logger
}

func New(db *gorm.DB, cfg *config.Config, log *logger.Logger) *Controller {
	return &Controller{db: db, cfg: cfg, log: log.With("component", "users")}
}

func findUser(tx *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	if err := tx.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("User not found")
		}
		return nil, apierr.Internal(err)
	}
	return &user, nil
}

func checkEmail(tx *gorm.DB, email string, excludeID uint) error {
	q := tx.Model(&models.User{}).Where("email = ?", email)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return apierr.Internal(err)
	}
	if count > 0 {
		return apierr.Conflict(emailTaken)
	}
	return nil
}

// applySelf copies the self-service fields onto user, hashing a new password.
func (ctl *Controller) applySelf(tx *gorm.DB, user *models.User, reqData *userValidator.UpdateMeRequest) error {
	if reqData.Email != nil && *reqData.Email != user.Email {
		if err := checkEmail(tx, *reqData.Email, user.ID); err != nil {
			return err
		}
		user.Email = *reqData.Email
	}
	if reqData.FullName != nil {
		user.FullName = *reqData.FullName
	}
	if reqData.Password != nil {
		hashed, err := auth.HashPassword(*reqData.Password, ctl.cfg.SaltRound)
		if err != nil {
			return apierr.Internal(err)
		}
		user.HashedPassword = hashed
	}
	return nil
}

func (ctl *Controller) Me(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, middleware.CurrentUser(c))
}

func (ctl *Controller) UpdateMe(c *fiber.Ctx) error {
	reqData := validators.Get[userValidator.UpdateMeRequest](c, "validatedUserUpdate")
	db := ctl.db.WithContext(c.UserContext())

	user, err := findUser(db, middleware.CurrentUser(c).ID)
	if err != nil {
		return err
	}
	if err := ctl.applySelf(db, user, reqData); err != nil {
		return err
	}
	if err := db.Save(user).Error; err != nil {
		return apierr.FromDB(err, emailTaken, "User not found")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, user)
}

func (ctl *Controller) List(c *fiber.Ctx) error {
	page := validators.GetPage(c)

	users := []models.User{}
	err := ctl.db.WithContext(c.UserContext()).
		Scopes(utils.Paginate(page.Skip, page.Limit)).
		Order("id").
		Find(&users).Error
	if err != nil {
		return apierr.Internal(err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, users)
}

func (ctl *Controller) Get(c *fiber.Ctx) error {
	user, err := findUser(ctl.db.WithContext(c.UserContext()), validators.IDParam(c, "id"))
	if err != nil {
		return err
	}
	return middleware.JsonResponse(c, fiber.StatusOK, user)
}

func (ctl *Controller) Create(c *fiber.Ctx) error {
	reqData := validators.Get[userValidator.AdminCreateUserRequest](c, "validatedAdminUserCreate")
	db := ctl.db.WithContext(c.UserContext())

	if err := checkEmail(db, reqData.Email, 0); err != nil {
		return err
	}
	hashed, err := auth.HashPassword(reqData.Password, ctl.cfg.SaltRound)
	if err != nil {
		return apierr.Internal(err)
	}

	user := models.User{
		Email:          reqData.Email,
		FullName:       reqData.FullName,
		HashedPassword: hashed,
		IsActive:       true,
		IsAdmin:        reqData.IsAdmin,
	}
	if reqData.IsActive != nil {
		user.IsActive = *reqData.IsActive
	}
	if err := db.Create(&user).Error; err != nil {
		return apierr.FromDB(err, emailTaken, "")
	}

	ctl.log.Info("User created by admin", "user_id", user.ID, "admin_id", middleware.CurrentUser(c).ID)
	return middleware.JsonResponse(c, fiber.StatusCreated, user)
}

func (ctl *Controller) Update(c *fiber.Ctx) error {
	reqData := validators.Get[userValidator.AdminUpdateUserRequest](c, "validatedAdminUserUpdate")
	db := ctl.db.WithContext(c.UserContext())

	user, err := findUser(db, validators.IDParam(c, "id"))
	if err != nil {
		return err
	}
	if err := ctl.applySelf(db, user, &reqData.UpdateMeRequest); err != nil {
		return err
	}
	if reqData.IsActive != nil {
		user.IsActive = *reqData.IsActive
	}
	if reqData.IsAdmin != nil {
		user.IsAdmin = *reqData.IsAdmin
	}
	if err := db.Save(user).Error; err != nil {
		return apierr.FromDB(err, emailTaken, "User not found")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, user)
}

// Delete removes the account; its progress rows and quiz attempts cascade.
func (ctl *Controller) Delete(c *fiber.Ctx) error {
	db := ctl.db.WithContext(c.UserContext())

	user, err := findUser(db, validators.IDParam(c, "id"))
	if err != nil {
		return err
	}
	if err := db.Delete(&models.User{}, user.ID).Error; err != nil {
		return apierr.FromDB(err, "", "User not found")
	}

	ctl.log.Info("User deleted", "user_id", user.ID, "admin_id", middleware.CurrentUser(c).ID)
	return middleware.JsonResponse(c, fiber.StatusOK, user)
}
