package routers_test

import (
	"fmt"
	"net/http"
	"testing"

	"learnhub/models"
	"learnhub/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourseProgress(t *testing.T) {
	e := newTestEnv(t)
	h := testutil.SeedHierarchy(t, e.db)
	testutil.SeedUnit(t, e.db, h.Course.ID, "Functions", 2)
	path := fmt.Sprintf("/courses/%d/progress", h.Course.ID)

	var progress models.CourseProgress
	e.decode(http.MethodGet, path, e.userToken, nil, http.StatusOK, &progress)
	assert.Equal(t, 2, progress.TotalUnits)
	assert.Equal(t, 0, progress.CompletedUnits)
	assert.Zero(t, progress.ProgressPercentage)

	e.decode(http.MethodPut, path, e.userToken, map[string]int{"completed_units": 1}, http.StatusOK, &progress)
	assert.Equal(t, 50.0, progress.ProgressPercentage)

	e.decode(http.MethodPut, path+"?completed_units=2", e.userToken, nil, http.StatusOK, &progress)
	assert.Equal(t, 100.0, progress.ProgressPercentage)

	status, _ := e.do(http.MethodPut, path, e.userToken, map[string]int{"completed_units": 3})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	status, _ = e.do(http.MethodPut, path, e.userToken, map[string]int{"completed_units": -1})
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	// One row per user and course, however often it is read.
	e.decode(http.MethodGet, path, e.userToken, nil, http.StatusOK, &progress)
	assert.Equal(t, 2, progress.CompletedUnits)
	var rows int64
	require.NoError(t, e.db.Model(&models.CourseProgress{}).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)

	// Progress is per user.
	e.decode(http.MethodGet, path, e.adminToken, nil, http.StatusOK, &progress)
	assert.Equal(t, 0, progress.CompletedUnits)
}

func TestCourseProgress_EmptyCourse(t *testing.T) {
	e := newTestEnv(t)
	cat := testutil.SeedCategory(t, e.db, "Art")
	course := testutil.SeedCourse(t, e.db, cat.ID, "Drawing", 1)
	path := fmt.Sprintf("/courses/%d/progress", course.ID)

	var progress models.CourseProgress
	e.decode(http.MethodPut, path, e.userToken, map[string]int{"completed_units": 0}, http.StatusOK, &progress)
	assert.Equal(t, 0, progress.TotalUnits)
	assert.Zero(t, progress.ProgressPercentage)

	status, raw := e.do(http.MethodGet, "/courses/9999/progress", e.userToken, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Course not found", detail(t, raw))

	status, _ = e.do(http.MethodGet, path, "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestVideoProgress(t *testing.T) {
	e := newTestEnv(t)
	h := testutil.SeedHierarchy(t, e.db)
	path := fmt.Sprintf("/videos/%d/progress", h.Video.ID)

	var progress models.VideoProgress
	e.decode(http.MethodGet, path, e.userToken, nil, http.StatusOK, &progress)
	assert.Zero(t, progress.Progress)
	assert.False(t, progress.Completed)

	e.decode(http.MethodPut, path, e.userToken, map[string]float64{"progress": 40, "last_position": 12.5}, http.StatusOK, &progress)
	assert.Equal(t, 40.0, progress.Progress)
	assert.Equal(t, 12.5, progress.LastPosition)
	assert.False(t, progress.Completed)

	e.decode(http.MethodPut, path, e.userToken, map[string]float64{"progress": 100, "last_position": 300}, http.StatusOK, &progress)
	assert.True(t, progress.Completed)

	e.decode(http.MethodPut, path, e.userToken, map[string]interface{}{
		"progress": 100, "last_position": 300, "completed": false,
	}, http.StatusOK, &progress)
	assert.False(t, progress.Completed)

	for _, body := range []map[string]float64{
		{"progress": 101, "last_position": 1},
		{"progress": -1, "last_position": 1},
		{"progress": 10, "last_position": -5},
		{"progress": 10},
	} {
		status, _ := e.do(http.MethodPut, path, e.userToken, body)
		assert.Equal(t, http.StatusUnprocessableEntity, status, body)
	}

	status, _ := e.do(http.MethodGet, "/videos/9999/progress", e.userToken, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestCategoriesWithProgress(t *testing.T) {
	e := newTestEnv(t)
	h := testutil.SeedHierarchy(t, e.db)
	testutil.SeedCategory(t, e.db, "Empty")

	e.decode(http.MethodPut, fmt.Sprintf("/videos/%d/progress", h.Video.ID), e.userToken,
		map[string]float64{"progress": 70, "last_position": 42}, http.StatusOK, nil)

	var categories []struct {
		models.Category
		Courses []struct {
			models.Course
			Progress      *models.CourseProgress `json:"progress"`
			VideoProgress []models.VideoProgress `json:"video_progress"`
		} `json:"courses"`
	}
	e.decode(http.MethodGet, "/categories/progress", e.userToken, nil, http.StatusOK, &categories)
	require.Len(t, categories, 2)
	assert.Equal(t, "Math", categories[0].Name)
	require.Len(t, categories[0].Courses, 1)
	course := categories[0].Courses[0]
	assert.Nil(t, course.Progress)
	require.Len(t, course.VideoProgress, 1)
	assert.Equal(t, 70.0, course.VideoProgress[0].Progress)
	assert.Empty(t, categories[1].Courses)

	status, _ := e.do(http.MethodGet, "/categories/progress", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}
