package unitController

import (
	"errors"

	"learnhub/apierr"
	"learnhub/logger"
	"learnhub/middleware"
	"learnhub/models"
	"learnhub/utils"
	"learnhub/validators"
	unitValidator "learnhub/validators/unit"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const duplicateTitle = "Unit with this title already exists in this course"

type Controller struct {
	db  *gorm.DB
	log *logger.Logger
}

func New(db *gorm.DB, log *logger.Logger) *Controller {
	return &Controller{db: db, log: log.With("component", "units")}
}

// UnitWithVideos is the nested read of GET /units/:id/videos.
type UnitWithVideos struct {
	models.Unit
	Videos []models.Video `json:"videos"`
}

func findUnit(tx *gorm.DB, id uint) (*models.Unit, error) {
	var unit models.Unit
	if err := tx.First(&unit, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("Unit not found")
		}
		return nil, apierr.Internal(err)
	}
	return &unit, nil
}

func courseExists(tx *gorm.DB, id uint) error {
	var count int64
	if err := tx.Model(&models.Course{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return apierr.Internal(err)
	}
	if count == 0 {
		return apierr.NotFound("Course not found")
	}
	return nil
}

func (ctl *Controller) List(c *fiber.Ctx) error {
	page := validators.GetPage(c)
	courseID, err := validators.OptionalQueryID(c, "course_id")
	if err != nil {
		return err
	}

	q := ctl.db.WithContext(c.UserContext()).Model(&models.Unit{})
	if courseID != 0 {
		q = q.Where("course_id = ?", courseID)
	}

	units := []models.Unit{}
	if err := q.Clauses(utils.OrderAsc).Scopes(utils.Paginate(page.Skip, page.Limit)).Find(&units).Error; err != nil {
		return apierr.Internal(err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, units)
}

func (ctl *Controller) Get(c *fiber.Ctx) error {
	unit, err := findUnit(ctl.db.WithContext(c.UserContext()), validators.IDParam(c, "id"))
	if err != nil {
		return err
	}
	return middleware.JsonResponse(c, fiber.StatusOK, unit)
}

func (ctl *Controller) Create(c *fiber.Ctx) error {
	reqData := validators.Get[unitValidator.CreateUnitRequest](c, "validatedUnit")

	var unit models.Unit
	err := ctl.db.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := courseExists(tx, reqData.CourseID); err != nil {
			return err
		}
		taken, err := utils.TitleTaken(tx, &models.Unit{}, "course_id", reqData.CourseID, reqData.Title, 0)
		if err != nil {
			return err
		}
		if taken {
			return apierr.Conflict(duplicateTitle)
		}
		order, err := utils.NextOrder(tx, &models.Unit{}, "course_id", reqData.CourseID)
		if err != nil {
			return err
		}

		unit = models.Unit{
			Title:       reqData.Title,
			Description: reqData.Description,
			CourseID:    reqData.CourseID,
			Order:       order,
		}
		return tx.Create(&unit).Error
	})
	if err != nil {
		return apierr.FromDB(err, duplicateTitle, "Course not found")
	}

	ctl.log.Info("Unit created", "unit_id", unit.ID, "course_id", unit.CourseID)
	return middleware.JsonResponse(c, fiber.StatusCreated, unit)
}

func (ctl *Controller) Update(c *fiber.Ctx) error {
	reqData := validators.Get[unitValidator.UpdateUnitRequest](c, "validatedUnitUpdate")
	id := validators.IDParam(c, "id")

	var unit *models.Unit
	err := ctl.db.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var err error
		if unit, err = findUnit(tx, id); err != nil {
			return err
		}

		courseID := unit.CourseID
		if reqData.CourseID != nil && *reqData.CourseID != unit.CourseID {
			if err := courseExists(tx, *reqData.CourseID); err != nil {
				return err
			}
			courseID = *reqData.CourseID
		}
		title := unit.Title
		if reqData.Title != nil {
			title = *reqData.Title
		}

		if title != unit.Title || courseID != unit.CourseID {
			taken, err := utils.TitleTaken(tx, &models.Unit{}, "course_id", courseID, title, unit.ID)
			if err != nil {
				return err
			}
			if taken {
				return apierr.Conflict(duplicateTitle)
			}
		}

		unit.Title = title
		unit.CourseID = courseID
		if reqData.Description != nil {
			unit.Description = *reqData.Description
		}
		if reqData.Order != nil {
			unit.Order = *reqData.Order
		}
		return tx.Save(unit).Error
	})
	if err != nil {
		return apierr.FromDB(err, duplicateTitle, "Course not found")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, unit)
}

func (ctl *Controller) Delete(c *fiber.Ctx) error {
	db := ctl.db.WithContext(c.UserContext())

	unit, err := findUnit(db, validators.IDParam(c, "id"))
	if err != nil {
		return err
	}
	if err := db.Delete(&models.Unit{}, unit.ID).Error; err != nil {
		return apierr.FromDB(err, "", "Unit not found")
	}

	ctl.log.Info("Unit deleted", "unit_id", unit.ID)
	return middleware.JsonResponse(c, fiber.StatusOK, unit)
}

func (ctl *Controller) Videos(c *fiber.Ctx) error {
	db := ctl.db.WithContext(c.UserContext())

	unit, err := findUnit(db, validators.IDParam(c, "id"))
	if err != nil {
		return err
	}

	videos := []models.Video{}
	if err := db.Where("unit_id = ?", unit.ID).Clauses(utils.OrderAsc).Find(&videos).Error; err != nil {
		return apierr.Internal(err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, UnitWithVideos{Unit: *unit, Videos: videos})
}

// Reorder rewrites the order of the listed units in one transaction.
func (ctl *Controller) Reorder(c *fiber.Ctx) error {
	items := validators.GetReorder(c)
	updates := make([]utils.OrderUpdate, 0, len(items))
	for _, item := range items {
		id, _ := item.TargetID()
		updates = append(updates, utils.OrderUpdate{ID: id, Order: *item.Order})
	}

	if err := utils.Reorder(ctl.db.WithContext(c.UserContext()), &models.Unit{}, "Unit", updates); err != nil {
		return apierr.FromDB(err, "", "Unit not found")
	}

	ctl.log.Info("Units reordered", "count", len(updates))
	return middleware.MessageResponse(c, fiber.StatusOK, "Units reordered successfully")
}
