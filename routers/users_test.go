package routers_test

import (
	"fmt"
	"net/http"
	"testing"

	"learnhub/auth"
	"learnhub/models"
	"learnhub/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteEndpointsNeedAdmin(t *testing.T) {
	e := newTestEnv(t)
	h := testutil.SeedHierarchy(t, e.db)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/categories"},
		{http.MethodPut, fmt.Sprintf("/categories/%d", h.Category.ID)},
		{http.MethodDelete, fmt.Sprintf("/categories/%d", h.Category.ID)},
		{http.MethodPost, "/courses"},
		{http.MethodPut, fmt.Sprintf("/courses/%d", h.Course.ID)},
		{http.MethodDelete, fmt.Sprintf("/courses/%d", h.Course.ID)},
		{http.MethodPost, "/units"},
		{http.MethodPut, fmt.Sprintf("/units/%d", h.Unit.ID)},
		{http.MethodDelete, fmt.Sprintf("/units/%d", h.Unit.ID)},
		{http.MethodPost, "/units/reorder"},
		{http.MethodPost, "/videos"},
		{http.MethodPut, fmt.Sprintf("/videos/%d", h.Video.ID)},
		{http.MethodDelete, fmt.Sprintf("/videos/%d", h.Video.ID)},
		{http.MethodPost, "/videos/reorder"},
		{http.MethodGet, "/users"},
		{http.MethodPost, "/users"},
		{http.MethodGet, fmt.Sprintf("/users/%d", e.user.ID)},
		{http.MethodDelete, fmt.Sprintf("/users/%d", e.user.ID)},
	}
	for _, r := range routes {
		status, _ := e.do(r.method, r.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, status, "%s %s anonymous", r.method, r.path)

		status, raw := e.do(r.method, r.path, e.userToken, nil)
		assert.Equal(t, http.StatusForbidden, status, "%s %s as learner", r.method, r.path)
		if status == http.StatusForbidden {
			assert.Equal(t, "The user doesn't have enough privileges", detail(t, raw))
		}
	}

	// Reads stay public.
	for _, path := range []string{"/categories", "/courses", "/units", "/videos", fmt.Sprintf("/courses/%d/units", h.Course.ID)} {
		status, _ := e.do(http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, status, path)
	}
}

func TestUpdateMe(t *testing.T) {
	e := newTestEnv(t)

	var me models.User
	e.decode(http.MethodPut, "/users/me", e.userToken, map[string]string{
		"full_name": "Renamed", "password": "fresh-pass",
	}, http.StatusOK, &me)
	assert.Equal(t, "Renamed", me.FullName)

	var stored models.User
	require.NoError(t, e.db.First(&stored, e.user.ID).Error)
	assert.True(t, auth.CheckPassword(stored.HashedPassword, "fresh-pass"))

	status, raw := e.do(http.MethodPut, "/users/me", e.userToken, map[string]string{"email": "admin@example.com"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Email already registered", detail(t, raw))

	// Learners cannot promote themselves.
	e.decode(http.MethodPut, "/users/me", e.userToken, map[string]interface{}{"is_admin": true}, http.StatusOK, &me)
	assert.False(t, me.IsAdmin)
}

func TestAdminManagesUsers(t *testing.T) {
	e := newTestEnv(t)

	var created models.User
	e.decode(http.MethodPost, "/users", e.adminToken, map[string]interface{}{
		"email": "teacher@example.com", "password": "teach123", "is_admin": true, "is_active": false,
	}, http.StatusCreated, &created)
	assert.True(t, created.IsAdmin)
	assert.False(t, created.IsActive)

	var users []models.User
	e.decode(http.MethodGet, "/users?limit=2", e.adminToken, nil, http.StatusOK, &users)
	assert.Len(t, users, 2)

	var updated models.User
	e.decode(http.MethodPut, fmt.Sprintf("/users/%d", e.user.ID), e.adminToken, map[string]interface{}{
		"is_active": false,
	}, http.StatusOK, &updated)
	assert.False(t, updated.IsActive)

	status, _ := e.do(http.MethodGet, "/users/me", e.userToken, nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	// Deleting a user removes their progress as well.
	h := testutil.SeedHierarchy(t, e.db)
	require.NoError(t, e.db.Create(&models.VideoProgress{UserID: e.user.ID, VideoID: h.Video.ID}).Error)

	var deleted models.User
	e.decode(http.MethodDelete, fmt.Sprintf("/users/%d", e.user.ID), e.adminToken, nil, http.StatusOK, &deleted)
	assert.Equal(t, "user@example.com", deleted.Email)

	var count int64
	require.NoError(t, e.db.Model(&models.VideoProgress{}).Count(&count).Error)
	assert.Zero(t, count)

	status, _ = e.do(http.MethodGet, fmt.Sprintf("/users/%d", e.user.ID), e.adminToken, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestHealth(t *testing.T) {
	e := newTestEnv(t)

	var body map[string]string
	e.decode(http.MethodGet, "/health", "", nil, http.StatusOK, &body)
	assert.Equal(t, "ok", body["status"])
}
