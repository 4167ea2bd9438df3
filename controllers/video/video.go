package videoController

import (
	"errors"

	"learnhub/apierr"
	"learnhub/logger"
	"learnhub/middleware"
	"learnhub/models"
	"learnhub/utils"
	"learnhub/validators"
	videoValidator "learnhub/validators/video"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const duplicateTitle = "Video with this title already exists in this unit"

type Controller struct {
	db  *gorm.DB
	log *logger.Logger
}

func New(db *gorm.DB, log *logger.Logger) *Controller {
	return &Controller{db: db, log: log.With("component", "videos")}
}

func findVideo(tx *gorm.DB, id uint) (*models.Video, error) {
	var video models.Video
	if err := tx.First(&video, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("Video not found")
		}
		return nil, apierr.Internal(err)
	}
	if video.VideoMetadata == nil {
		video.VideoMetadata = datatypes.JSONMap{}
	}
	return &video, nil
}

func unitExists(tx *gorm.DB, id uint) error {
	var count int64
	if err := tx.Model(&models.Unit{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return apierr.Internal(err)
	}
	if count == 0 {
		return apierr.NotFound("Unit not found")
	}
	return nil
}

func (ctl *Controller) List(c *fiber.Ctx) error {
	page := validators.GetPage(c)
	unitID, err := validators.OptionalQueryID(c, "unit_id")
	if err != nil {
		return err
	}

	q := ctl.db.WithContext(c.UserContext()).Model(&models.Video{})
	if unitID != 0 {
		q = q.Where("unit_id = ?", unitID)
	}

	videos := []models.Video{}
	if err := q.Clauses(utils.OrderAsc).Scopes(utils.Paginate(page.Skip, page.Limit)).Find(&videos).Error; err != nil {
		return apierr.Internal(err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, videos)
}

func (ctl *Controller) Get(c *fiber.Ctx) error {
	video, err := findVideo(ctl.db.WithContext(c.UserContext()), validators.IDParam(c, "id"))
	if err != nil {
		return err
	}
	return middleware.JsonResponse(c, fiber.StatusOK, video)
}

// Metadata returns the video with its metadata map, never null.
func (ctl *Controller) Metadata(c *fiber.Ctx) error {
	return ctl.Get(c)
}

func (ctl *Controller) Create(c *fiber.Ctx) error {
	reqData := validators.Get[videoValidator.CreateVideoRequest](c, "validatedVideo")

	var video models.Video
	err := ctl.db.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := unitExists(tx, reqData.UnitID); err != nil {
			return err
		}
		taken, err := utils.TitleTaken(tx, &models.Video{}, "unit_id", reqData.UnitID, reqData.Title, 0)
		if err != nil {
			return err
		}
		if taken {
			return apierr.Conflict(duplicateTitle)
		}
		order, err := utils.NextOrder(tx, &models.Video{}, "unit_id", reqData.UnitID)
		if err != nil {
			return err
		}

		metadata := datatypes.JSONMap{}
		for k, v := range reqData.VideoMetadata {
			metadata[k] = v
		}
		video = models.Video{
			Title:           reqData.Title,
			Description:     reqData.Description,
			URL:             reqData.URL,
			UnitID:          reqData.UnitID,
			Order:           order,
			DurationSeconds: reqData.DurationSeconds,
			ThumbnailURL:    reqData.ThumbnailURL,
			VideoMetadata:   metadata,
		}
		return tx.Create(&video).Error
	})
	if err != nil {
		return apierr.FromDB(err, duplicateTitle, "Unit not found")
	}

	ctl.log.Info("Video created", "video_id", video.ID, "unit_id", video.UnitID)
	return middleware.JsonResponse(c, fiber.StatusCreated, video)
}

// Update applies a partial update. video_metadata keys are merged into the stored map; a key
// sent with null is stored as null rather than removed.
func (ctl *Controller) Update(c *fiber.Ctx) error {
	reqData := validators.Get[videoValidator.UpdateVideoRequest](c, "validatedVideoUpdate")
	id := validators.IDParam(c, "id")

	var video *models.Video
	err := ctl.db.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var err error
		if video, err = findVideo(tx, id); err != nil {
			return err
		}

		unitID := video.UnitID
		if reqData.UnitID != nil && *reqData.UnitID != video.UnitID {
			if err := unitExists(tx, *reqData.UnitID); err != nil {
				return err
			}
			unitID = *reqData.UnitID
		}
		title := video.Title
		if reqData.Title != nil {
			title = *reqData.Title
		}

		if title != video.Title || unitID != video.UnitID {
			taken, err := utils.TitleTaken(tx, &models.Video{}, "unit_id", unitID, title, video.ID)
			if err != nil {
				return err
			}
			if taken {
				return apierr.Conflict(duplicateTitle)
			}
		}

		video.Title = title
		video.UnitID = unitID
		if reqData.Description != nil {
			video.Description = *reqData.Description
		}
		if reqData.URL != nil {
			video.URL = *reqData.URL
		}
		if reqData.Order != nil {
			video.Order = *reqData.Order
		}
		if reqData.DurationSeconds != nil {
			video.DurationSeconds = reqData.DurationSeconds
		}
		if reqData.ThumbnailURL != nil {
			video.ThumbnailURL = reqData.ThumbnailURL
		}
		for k, v := range reqData.VideoMetadata {
			video.VideoMetadata[k] = v
		}
		return tx.Save(video).Error
	})
	if err != nil {
		return apierr.FromDB(err, duplicateTitle, "Unit not found")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, video)
}

// Delete removes the video with its quiz, attempts and progress rows.
func (ctl *Controller) Delete(c *fiber.Ctx) error {
	db := ctl.db.WithContext(c.UserContext())

	video, err := findVideo(db, validators.IDParam(c, "id"))
	if err != nil {
		return err
	}
	if err := db.Delete(&models.Video{}, video.ID).Error; err != nil {
		return apierr.FromDB(err, "", "Video not found")
	}

	ctl.log.Info("Video deleted", "video_id", video.ID)
	return middleware.JsonResponse(c, fiber.StatusOK, video)
}

func (ctl *Controller) Reorder(c *fiber.Ctx) error {
	items := validators.GetReorder(c)
	updates := make([]utils.OrderUpdate, 0, len(items))
	for _, item := range items {
		id, _ := item.TargetID()
		updates = append(updates, utils.OrderUpdate{ID: id, Order: *item.Order})
	}

	if err := utils.Reorder(ctl.db.WithContext(c.UserContext()), &models.Video{}, "Video", updates); err != nil {
		return apierr.FromDB(err, "", "Video not found")
	}

	ctl.log.Info("Videos reordered", "count", len(updates))
	return middleware.MessageResponse(c, fiber.StatusOK, "Videos reordered successfully")
}
