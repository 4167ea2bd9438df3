package routers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"learnhub/auth"
	"learnhub/config"
	"learnhub/logger"
	"learnhub/models"
	"learnhub/routers"
	"learnhub/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	t   *testing.T
	app *fiber.App
	db  *gorm.DB
	cfg *config.Config

	admin      *models.User
	user       *models.User
	adminToken string
	userToken  string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	cfg := testutil.Config()
	db := testutil.DB(t)

	e := &testEnv{t: t, app: routers.NewApp(db, cfg, logger.Nop()), db: db, cfg: cfg}
	e.admin = testutil.SeedUser(t, db, "admin@example.com", true)
	e.user = testutil.SeedUser(t, db, "user@example.com", false)
	e.adminToken = e.tokenFor(e.admin)
	e.userToken = e.tokenFor(e.user)
	return e
}

func (e *testEnv) tokenFor(u *models.User) string {
	e.t.Helper()
	token, _, err := auth.NewIssuer(e.cfg.JWTKey, e.cfg.AccessTokenTTL).Issue(u)
	require.NoError(e.t, err)
	return token
}

// do sends a JSON request and returns the status and raw body.
func (e *testEnv) do(method, path, token string, body interface{}) (int, []byte) {
	e.t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(e.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return e.send(req)
}

func (e *testEnv) send(req *http.Request) (int, []byte) {
	e.t.Helper()
	resp, err := e.app.Test(req, -1)
	require.NoError(e.t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(e.t, err)
	return resp.StatusCode, raw
}

// decode sends the request, requires the given status, and unmarshals the body into out.
func (e *testEnv) decode(method, path, token string, body interface{}, want int, out interface{}) {
	e.t.Helper()
	status, raw := e.do(method, path, token, body)
	require.Equal(e.t, want, status, string(raw))
	if out != nil {
		require.NoError(e.t, json.Unmarshal(raw, out), string(raw))
	}
}

// detail returns the "detail" field of an error body.
func detail(t *testing.T, raw []byte) string {
	t.Helper()
	var body struct {
		Detail string `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(raw, &body), string(raw))
	return body.Detail
}
