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

func TestReorderUnits(t *testing.T) {
	e := newTestEnv(t)
	h := testutil.SeedHierarchy(t, e.db)
	second := testutil.SeedUnit(t, e.db, h.Course.ID, "Functions", 2)
	third := testutil.SeedUnit(t, e.db, h.Course.ID, "Graphs", 3)

	var msg map[string]string
	e.decode(http.MethodPost, "/units/reorder", e.adminToken, []map[string]interface{}{
		{"unit_id": third.ID, "order": 1},
		{"id": h.Unit.ID, "order": 3},
	}, http.StatusOK, &msg)
	assert.Equal(t, "Units reordered successfully", msg["message"])

	var units []models.Unit
	e.decode(http.MethodGet, fmt.Sprintf("/units?course_id=%d", h.Course.ID), "", nil, http.StatusOK, &units)
	require.Len(t, units, 3)
	assert.Equal(t, []uint{third.ID, second.ID, h.Unit.ID}, []uint{units[0].ID, units[1].ID, units[2].ID})
	assert.Equal(t, 2, units[1].Order, "units not in the request keep their order")
}

func TestReorderVideos_MissingIDChangesNothing(t *testing.T) {
	e := newTestEnv(t)
	h := testutil.SeedHierarchy(t, e.db)
	second := testutil.SeedVideo(t, e.db, h.Unit.ID, "Quadratic", 2)

	status, raw := e.do(http.MethodPost, "/videos/reorder", e.adminToken, []map[string]interface{}{
		{"video_id": second.ID, "order": 1},
		{"video_id": 9999, "order": 2},
	})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Video with id 9999 not found", detail(t, raw))

	var got models.Video
	e.decode(http.MethodGet, fmt.Sprintf("/videos/%d", second.ID), "", nil, http.StatusOK, &got)
	assert.Equal(t, 2, got.Order)
}

func TestReorder_Validation(t *testing.T) {
	e := newTestEnv(t)

	status, _ := e.do(http.MethodPost, "/units/reorder", e.adminToken, []map[string]interface{}{})
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	status, raw := e.do(http.MethodPost, "/videos/reorder", e.adminToken, []map[string]interface{}{{"order": 1}})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "Each item must contain video_id and order", detail(t, raw))

	status, _ = e.do(http.MethodPost, "/units/reorder", e.userToken, []map[string]interface{}{{"id": 1, "order": 1}})
	assert.Equal(t, http.StatusForbidden, status)
}
