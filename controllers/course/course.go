package courseController

import (
	"errors"

	"learnhub/apierr"
	"learnhub/logger"
	"learnhub/middleware"
	"learnhub/models"
	"learnhub/utils"
	"learnhub/validators"
	courseValidator "learnhub/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const duplicateTitle = "Course with this title already exists in this category"

type Controller struct {
	db  *gorm.DB
	log *logger.Logger
}

func New(db *gorm.DB, log *logger.Logger) *Controller {
	return &Controller{db: db, log: log.With("component", "courses")}
}

// CourseWithUnits is the nested read of GET /courses/:id/units.
type CourseWithUnits struct {
	models.Course
	Units []models.Unit `json:"units"`
}

func findCourse(tx *gorm.DB, id uint) (*models.Course, error) {
	var course models.Course
	if err := tx.First(&course, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("Course not found")
		}
		return nil, apierr.Internal(err)
	}
	return &course, nil
}

func categoryExists(tx *gorm.DB, id uint) error {
	var count int64
	if err := tx.Model(&models.Category{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return apierr.Internal(err)
	}
	if count == 0 {
		return apierr.NotFound("Category not found")
	}
	return nil
}

func (ctl *Controller) List(c *fiber.Ctx) error {
	page := validators.GetPage(c)
	categoryID, err := validators.OptionalQueryID(c, "category_id")
	if err != nil {
		return err
	}

	q := ctl.db.WithContext(c.UserContext()).Model(&models.Course{})
	if categoryID != 0 {
		q = q.Where("category_id = ?", categoryID)
	}

	courses := []models.Course{}
	if err := q.Clauses(utils.OrderAsc).Scopes(utils.Paginate(page.Skip, page.Limit)).Find(&courses).Error; err != nil {
		return apierr.Internal(err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, courses)
}

func (ctl *Controller) Get(c *fiber.Ctx) error {
	course, err := findCourse(ctl.db.WithContext(c.UserContext()), validators.IDParam(c, "id"))
	if err != nil {
		return err
	}
	return middleware.JsonResponse(c, fiber.StatusOK, course)
}

// Create appends a course after its siblings in the category.
func (ctl *Controller) Create(c *fiber.Ctx) error {
	reqData := validators.Get[courseValidator.CreateCourseRequest](c, "validatedCourse")

	var course models.Course
	err := ctl.db.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := categoryExists(tx, reqData.CategoryID); err != nil {
			return err
		}
		taken, err := utils.TitleTaken(tx, &models.Course{}, "category_id", reqData.CategoryID, reqData.Title, 0)
		if err != nil {
			return err
		}
		if taken {
			return apierr.Conflict(duplicateTitle)
		}
		order, err := utils.NextOrder(tx, &models.Course{}, "category_id", reqData.CategoryID)
		if err != nil {
			return err
		}

		course = models.Course{
			Title:       reqData.Title,
			Description: reqData.Description,
			CategoryID:  reqData.CategoryID,
			Order:       order,
		}
		return tx.Create(&course).Error
	})
	if err != nil {
		return apierr.FromDB(err, duplicateTitle, "Category not found")
	}

	ctl.log.Info("Course created", "course_id", course.ID, "category_id", course.CategoryID)
	return middleware.JsonResponse(c, fiber.StatusCreated, course)
}

func (ctl *Controller) Update(c *fiber.Ctx) error {
	reqData := validators.Get[courseValidator.UpdateCourseRequest](c, "validatedCourseUpdate")
	id := validators.IDParam(c, "id")

	var course *models.Course
	err := ctl.db.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var err error
		if course, err = findCourse(tx, id); err != nil {
			return err
		}

		categoryID := course.CategoryID
		if reqData.CategoryID != nil && *reqData.CategoryID != course.CategoryID {
			if err := categoryExists(tx, *reqData.CategoryID); err != nil {
				return err
			}
			categoryID = *reqData.CategoryID
		}
		title := course.Title
		if reqData.Title != nil {
			title = *reqData.Title
		}

		if title != course.Title || categoryID != course.CategoryID {
			taken, err := utils.TitleTaken(tx, &models.Course{}, "category_id", categoryID, title, course.ID)
			if err != nil {
				return err
			}
			if taken {
				return apierr.Conflict(duplicateTitle)
			}
		}

		course.Title = title
		course.CategoryID = categoryID
		if reqData.Description != nil {
			course.Description = *reqData.Description
		}
		if reqData.Order != nil {
			course.Order = *reqData.Order
		}
		return tx.Save(course).Error
	})
	if err != nil {
		return apierr.FromDB(err, duplicateTitle, "Category not found")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, course)
}

// Delete removes the course together with its units, videos, quizzes and progress rows.
func (ctl *Controller) Delete(c *fiber.Ctx) error {
	db := ctl.db.WithContext(c.UserContext())

	course, err := findCourse(db, validators.IDParam(c, "id"))
	if err != nil {
		return err
	}
	if err := db.Delete(&models.Course{}, course.ID).Error; err != nil {
		return apierr.FromDB(err, "", "Course not found")
	}

	ctl.log.Info("Course deleted", "course_id", course.ID)
	return middleware.JsonResponse(c, fiber.StatusOK, course)
}

func (ctl *Controller) Units(c *fiber.Ctx) error {
	db := ctl.db.WithContext(c.UserContext())

	course, err := findCourse(db, validators.IDParam(c, "id"))
	if err != nil {
		return err
	}

	units := []models.Unit{}
	if err := db.Where("course_id = ?", course.ID).Clauses(utils.OrderAsc).Find(&units).Error; err != nil {
		return apierr.Internal(err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, CourseWithUnits{Course: *course, Units: units})
}
