package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/siherrmann/jobSchema/model"
	"github.com/siherrmann/jobSchema/schema"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateJobHandler(t *testing.T) {
	handler := newTestHandler(t)
	e := echo.New()

	newContext := func(body string) (echo.Context, *httptest.ResponseRecorder) {
		req := httptest.NewRequest(http.MethodPost, "/api/jobs/validate", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		return e.NewContext(req, rec), rec
	}

	t.Run("ValidateJob with valid job", func(t *testing.T) {
		c, rec := newContext(`{"title": "Nightly", "task": "test-task", "schedule": {"type": "interval", "hours": 24}}`)

		require.NoError(t, handler.ValidateJob(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		body := decodeResponse(t, rec)
		assert.Equal(t, "Nightly", body["title"])
		assert.Equal(t, true, body["active"])
		assert.Equal(t, "celery", body["default_queue"])
		assert.Equal(t, map[string]interface{}{"type": "interval", "hours": float64(24)}, body["schedule"])
		assert.Nil(t, body["id"])
	})

	t.Run("ValidateJob with invalid job reports field errors", func(t *testing.T) {
		c, rec := newContext(`{"title": "", "task": "unknown-task", "schedule": {"type": "solar"}}`)

		require.NoError(t, handler.ValidateJob(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		body := decodeResponse(t, rec)
		errs, ok := body["errors"].(map[string]interface{})
		require.True(t, ok)
		assert.Contains(t, errs, "title")
		assert.Contains(t, errs, "task")
		assert.Contains(t, errs, "schedule.type")
		assert.Equal(t, []interface{}{"Must be one of: test-task."}, errs["task"])
	})

	t.Run("ValidateJob with invalid JSON", func(t *testing.T) {
		c, rec := newContext(`{"title":`)

		require.NoError(t, handler.ValidateJob(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid request")
	})

	t.Run("ValidateJob with empty body", func(t *testing.T) {
		c, rec := newContext(``)

		require.NoError(t, handler.ValidateJob(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "request body is empty")
	})

	t.Run("ValidateJob omits fields the caller may not see", func(t *testing.T) {
		c, rec := newContext(`{"title": "Nightly", "description": "secret", "task": "test-task"}`)
		model.SetRequestContext(c, model.RequestContext{Permissions: schema.NewDenyFields("description")})

		require.NoError(t, handler.ValidateJob(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		body := decodeResponse(t, rec)
		assert.NotContains(t, body, "description")
		assert.Contains(t, body, "title")
	})
}
