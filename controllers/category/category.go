package categoryController

import (
	"errors"

	"learnhub/apierr"
	"learnhub/logger"
	"learnhub/middleware"
	"learnhub/models"
	"learnhub/utils"
	"learnhub/validators"
	categoryValidator "learnhub/validators/category"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Controller struct {
	db  *gorm.DB
	log *logger.Logger
}

func New(db *gorm.DB, log *logger.Logger) *Controller {
	return &Controller{db: db, log: log.With("component", "categories")}
}

func (ctl *Controller) find(tx *gorm.DB, id uint) (*models.Category, error) {
	var category models.Category
	if err := tx.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("Category not found")
		}
		return nil, apierr.Internal(err)
	}
	return &category, nil
}

func nameTaken(tx *gorm.DB, name string, excludeID uint) (bool, error) {
	q := tx.Model(&models.Category{}).Where("name = ?", name)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (ctl *Controller) List(c *fiber.Ctx) error {
	page := validators.GetPage(c)

	categories := []models.Category{}
	err := ctl.db.WithContext(c.UserContext()).
		Scopes(utils.Paginate(page.Skip, page.Limit)).
		Order("id").
		Find(&categories).Error
	if err != nil {
		return apierr.Internal(err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, categories)
}

func (ctl *Controller) Get(c *fiber.Ctx) error {
	category, err := ctl.find(ctl.db.WithContext(c.UserContext()), validators.IDParam(c, "id"))
	if err != nil {
		return err
	}
	return middleware.JsonResponse(c, fiber.StatusOK, category)
}

func (ctl *Controller) Create(c *fiber.Ctx) error {
	reqData := validators.Get[categoryValidator.CreateCategoryRequest](c, "validatedCategory")
	db := ctl.db.WithContext(c.UserContext())

	taken, err := nameTaken(db, reqData.Name, 0)
	if err != nil {
		return apierr.Internal(err)
	}
	if taken {
		return apierr.Conflict("Category with this name already exists")
	}

	category := models.Category{Name: reqData.Name, Description: reqData.Description}
	if err := db.Create(&category).Error; err != nil {
		return apierr.FromDB(err, "Category with this name already exists", "")
	}

	ctl.log.Info("Category created", "category_id", category.ID)
	return middleware.JsonResponse(c, fiber.StatusCreated, category)
}

func (ctl *Controller) Update(c *fiber.Ctx) error {
	reqData := validators.Get[categoryValidator.UpdateCategoryRequest](c, "validatedCategoryUpdate")
	db := ctl.db.WithContext(c.UserContext())

	category, err := ctl.find(db, validators.IDParam(c, "id"))
	if err != nil {
		return err
	}

	if reqData.Name != nil && *reqData.Name != category.Name {
		taken, err := nameTaken(db, *reqData.Name, category.ID)
		if err != nil {
			return apierr.Internal(err)
		}
		if taken {
			return apierr.Conflict("Category with this name already exists")
		}
		category.Name = *reqData.Name
	}
	if reqData.Description != nil {
		category.Description = *reqData.Description
	}

	if err := db.Save(category).Error; err != nil {
		return apierr.FromDB(err, "Category with this name already exists", "Category not found")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, category)
}

// Delete removes the category; its courses and everything below them cascade.
func (ctl *Controller) Delete(c *fiber.Ctx) error {
	db := ctl.db.WithContext(c.UserContext())

	category, err := ctl.find(db, validators.IDParam(c, "id"))
	if err != nil {
		return err
	}
	if err := db.Delete(&models.Category{}, category.ID).Error; err != nil {
		return apierr.FromDB(err, "", "Category not found")
	}

	ctl.log.Info("Category deleted", "category_id", category.ID)
	return middleware.JsonResponse(c, fiber.StatusOK, category)
}

// Courses lists the courses of one category in display order.
func (ctl *Controller) Courses(c *fiber.Ctx) error {
	db := ctl.db.WithContext(c.UserContext())

	category, err := ctl.find(db, validators.IDParam(c, "id"))
	if err != nil {
		return err
	}

	courses := []models.Course{}
	if err := db.Where("category_id = ?", category.ID).Clauses(utils.OrderAsc).Find(&courses).Error; err != nil {
		return apierr.Internal(err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, courses)
}
