package utils_test

import (
	"errors"
	"net/http"
	"testing"

	"learnhub/apierr"
	"learnhub/models"
	"learnhub/testutil"
	"learnhub/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextOrderAndTitleTaken(t *testing.T) {
	db := testutil.DB(t)
	h := testutil.SeedHierarchy(t, db)
	testutil.SeedUnit(t, db, h.Course.ID, "Inequalities", 2)

	next, err := utils.NextOrder(db, &models.Unit{}, "course_id", h.Course.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, next)

	taken, err := utils.TitleTaken(db, &models.Unit{}, "course_id", h.Course.ID, "Equations", 0)
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = utils.TitleTaken(db, &models.Unit{}, "course_id", h.Course.ID, "Equations", h.Unit.ID)
	require.NoError(t, err)
	assert.False(t, taken)

	other := testutil.SeedCourse(t, db, h.Category.ID, "Geometry", 2)
	taken, err = utils.TitleTaken(db, &models.Unit{}, "course_id", other.ID, "Equations", 0)
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestReorder(t *testing.T) {
	db := testutil.DB(t)
	h := testutil.SeedHierarchy(t, db)
	a := h.Unit
	b := testutil.SeedUnit(t, db, h.Course.ID, "B", 2)
	c := testutil.SeedUnit(t, db, h.Course.ID, "C", 3)

	require.NoError(t, utils.Reorder(db, &models.Unit{}, "Unit", []utils.OrderUpdate{
		{ID: a.ID, Order: 3},
		{ID: b.ID, Order: 1},
	}))

	var units []models.Unit
	require.NoError(t, db.Order(utils.OrderAsc).Find(&units).Error)
	got := map[uint]int{}
	for _, u := range units {
		got[u.ID] = u.Order
	}
	assert.Equal(t, map[uint]int{a.ID: 3, b.ID: 1, c.ID: 3}, got)
}

func TestReorder_MissingIDRollsBack(t *testing.T) {
	db := testutil.DB(t)
	h := testutil.SeedHierarchy(t, db)

	err := utils.Reorder(db, &models.Unit{}, "Unit", []utils.OrderUpdate{
		{ID: h.Unit.ID, Order: 9},
		{ID: 9999, Order: 1},
	})

	var apiErr *apierr.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Unit with id 9999 not found", apiErr.Detail)

	var unit models.Unit
	require.NoError(t, db.First(&unit, h.Unit.ID).Error)
	assert.Equal(t, 1, unit.Order)
}
