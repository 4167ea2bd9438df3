package categoryController

import (
	"learnhub/apierr"
	"learnhub/middleware"
	"learnhub/models"
	"learnhub/utils"

	"github.com/gofiber/fiber/v2"
)

// CourseWithProgress is a course plus the caller's progress on it and on its videos.
type CourseWithProgress struct {
	models.Course
	Progress      *models.CourseProgress `json:"progress"`
	VideoProgress []models.VideoProgress `json:"video_progress"`
}

type CategoryWithProgress struct {
	models.Category
	Courses []CourseWithProgress `json:"courses"`
}

// Progress returns every category with its courses and the current user's progress records.
// Nothing is created here; courses the user never opened carry a null progress.
func (ctl *Controller) Progress(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	db := ctl.db.WithContext(c.UserContext())

	var categories []models.Category
	if err := db.Order("id").Find(&categories).Error; err != nil {
		return apierr.Internal(err)
	}
	var courses []models.Course
	if err := db.Clauses(utils.OrderAsc).Find(&courses).Error; err != nil {
		return apierr.Internal(err)
	}

	courseIDs := make([]uint, 0, len(courses))
	for _, course := range courses {
		courseIDs = append(courseIDs, course.ID)
	}

	courseProgress := make(map[uint]*models.CourseProgress)
	videoProgress := make(map[uint][]models.VideoProgress)
	if len(courseIDs) > 0 {
		var rows []models.CourseProgress
		if err := db.Where("user_id = ? AND course_id IN ?", user.ID, courseIDs).Find(&rows).Error; err != nil {
			return apierr.Internal(err)
		}
		for i := range rows {
			courseProgress[rows[i].CourseID] = &rows[i]
		}

		var err error
		if videoProgress, err = ctl.videoProgressByCourse(c, user.ID, courseIDs); err != nil {
			return apierr.Internal(err)
		}
	}

	byCategory := make(map[uint][]CourseWithProgress)
	for _, course := range courses {
		vp := videoProgress[course.ID]
		if vp == nil {
			vp = []models.VideoProgress{}
		}
		byCategory[course.CategoryID] = append(byCategory[course.CategoryID], CourseWithProgress{
			Course:        course,
			Progress:      courseProgress[course.ID],
			VideoProgress: vp,
		})
	}

	resp := make([]CategoryWithProgress, 0, len(categories))
	for _, category := range categories {
		items := byCategory[category.ID]
		if items == nil {
			items = []CourseWithProgress{}
		}
		resp = append(resp, CategoryWithProgress{Category: category, Courses: items})
	}
	return middleware.JsonResponse(c, fiber.StatusOK, resp)
}

func (ctl *Controller) videoProgressByCourse(c *fiber.Ctx, userID uint, courseIDs []uint) (map[uint][]models.VideoProgress, error) {
	db := ctl.db.WithContext(c.UserContext())
	out := make(map[uint][]models.VideoProgress)

	var units []models.Unit
	if err := db.Select("id", "course_id").Where("course_id IN ?", courseIDs).Find(&units).Error; err != nil {
		return nil, err
	}
	if len(units) == 0 {
		return out, nil
	}
	unitCourse := make(map[uint]uint, len(units))
	unitIDs := make([]uint, 0, len(units))
	for _, u := range units {
		unitCourse[u.ID] = u.CourseID
		unitIDs = append(unitIDs, u.ID)
	}

	var videos []models.Video
	if err := db.Select("id", "unit_id").Where("unit_id IN ?", unitIDs).Find(&videos).Error; err != nil {
		return nil, err
	}
	if len(videos) == 0 {
		return out, nil
	}
	videoCourse := make(map[uint]uint, len(videos))
	videoIDs := make([]uint, 0, len(videos))
	for _, v := range videos {
		videoCourse[v.ID] = unitCourse[v.UnitID]
		videoIDs = append(videoIDs, v.ID)
	}

	var rows []models.VideoProgress
	if err := db.Where("user_id = ? AND video_id IN ?", userID, videoIDs).Order("video_id").Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		courseID := videoCourse[row.VideoID]
		out[courseID] = append(out[courseID], row)
	}
	return out, nil
}
