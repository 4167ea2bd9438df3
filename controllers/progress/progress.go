package progressController

import (
	"time"

	"learnhub/apierr"
	"learnhub/logger"
	"learnhub/middleware"
	"learnhub/models"
	"learnhub/utils"
	"learnhub/validators"
	progressValidator "learnhub/validators/progress"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Controller struct {
	db  *gorm.DB
	log *logger.Logger
	now func() time.Time
}

func New(db *gorm.DB, log *logger.Logger) *Controller {
	return &Controller{db: db, log: log.With("component", "progress"), now: time.Now}
}

func exists(tx *gorm.DB, model interface{}, id uint, notFound string) error {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return apierr.Internal(err)
	}
	if count == 0 {
		return apierr.NotFound(notFound)
	}
	return nil
}

// courseProgress returns the (user, course) row, inserting a fresh one if none exists. The
// insert ignores a conflict so that concurrent first reads end up sharing one row.
func (ctl *Controller) courseProgress(tx *gorm.DB, userID, courseID uint) (*models.CourseProgress, error) {
	if err := exists(tx, &models.Course{}, courseID, "Course not found"); err != nil {
		return nil, err
	}

	var units int64
	if err := tx.Model(&models.Unit{}).Where("course_id = ?", courseID).Count(&units).Error; err != nil {
		return nil, err
	}
	fresh := models.CourseProgress{
		UserID:       userID,
		CourseID:     courseID,
		TotalUnits:   int(units),
		LastAccessed: ctl.now(),
	}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&fresh).Error; err != nil {
		return nil, err
	}

	var progress models.CourseProgress
	if err := tx.Where("user_id = ? AND course_id = ?", userID, courseID).First(&progress).Error; err != nil {
		return nil, err
	}
	return &progress, nil
}

func (ctl *Controller) videoProgress(tx *gorm.DB, userID, videoID uint) (*models.VideoProgress, error) {
	if err := exists(tx, &models.Video{}, videoID, "Video not found"); err != nil {
		return nil, err
	}

	fresh := models.VideoProgress{UserID: userID, VideoID: videoID, LastAccessed: ctl.now()}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&fresh).Error; err != nil {
		return nil, err
	}

	var progress models.VideoProgress
	if err := tx.Where("user_id = ? AND video_id = ?", userID, videoID).First(&progress).Error; err != nil {
		return nil, err
	}
	return &progress, nil
}

func (ctl *Controller) GetCourse(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	courseID := validators.IDParam(c, "id")

	var progress *models.CourseProgress
	err := ctl.db.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var err error
		if progress, err = ctl.courseProgress(tx, user.ID, courseID); err != nil {
			return err
		}
		progress.LastAccessed = ctl.now()
		return tx.Model(progress).Update("last_accessed", progress.LastAccessed).Error
	})
	if err != nil {
		return apierr.FromDB(err, "", "Course not found")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, progress)
}

// UpdateCourse records how many units the user finished and recomputes the percentage.
func (ctl *Controller) UpdateCourse(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	courseID := validators.IDParam(c, "id")
	reqData := validators.Get[progressValidator.CourseProgressUpdate](c, "validatedCourseProgress")

	var progress *models.CourseProgress
	err := ctl.db.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var err error
		if progress, err = ctl.courseProgress(tx, user.ID, courseID); err != nil {
			return err
		}

		completed := *reqData.CompletedUnits
		if completed > progress.TotalUnits {
			return apierr.Validation("Validation failed!", map[string]string{
				"completed_units": "completed_units cannot exceed total_units!",
			})
		}

		progress.CompletedUnits = completed
		progress.ProgressPercentage = utils.CoursePercentage(completed, progress.TotalUnits)
		progress.LastAccessed = ctl.now()
		return tx.Model(progress).Updates(map[string]interface{}{
			"completed_units":     progress.CompletedUnits,
			"progress_percentage": progress.ProgressPercentage,
			"last_accessed":       progress.LastAccessed,
		}).Error
	})
	if err != nil {
		return apierr.FromDB(err, "", "Course not found")
	}

	ctl.log.Debug("Course progress updated", "user_id", user.ID, "course_id", courseID, "percentage", progress.ProgressPercentage)
	return middleware.JsonResponse(c, fiber.StatusOK, progress)
}

func (ctl *Controller) GetVideo(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	videoID := validators.IDParam(c, "id")

	var progress *models.VideoProgress
	err := ctl.db.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var err error
		if progress, err = ctl.videoProgress(tx, user.ID, videoID); err != nil {
			return err
		}
		progress.LastAccessed = ctl.now()
		return tx.Model(progress).Update("last_accessed", progress.LastAccessed).Error
	})
	if err != nil {
		return apierr.FromDB(err, "", "Video not found")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, progress)
}

// UpdateVideo stores the player state as reported. completed defaults to progress >= 100.
func (ctl *Controller) UpdateVideo(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	videoID := validators.IDParam(c, "id")
	reqData := validators.Get[progressValidator.VideoProgressUpdate](c, "validatedVideoProgress")

	var progress *models.VideoProgress
	err := ctl.db.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var err error
		if progress, err = ctl.videoProgress(tx, user.ID, videoID); err != nil {
			return err
		}

		progress.Progress = *reqData.Progress
		progress.LastPosition = *reqData.LastPosition
		if reqData.Completed != nil {
			progress.Completed = *reqData.Completed
		} else {
			progress.Completed = progress.Progress >= 100
		}
		progress.LastAccessed = ctl.now()
		return tx.Model(progress).Updates(map[string]interface{}{
			"progress":      progress.Progress,
			"last_position": progress.LastPosition,
			"completed":     progress.Completed,
			"last_accessed": progress.LastAccessed,
		}).Error
	})
	if err != nil {
		return apierr.FromDB(err, "", "Video not found")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, progress)
}
