package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errMissing = errors.New("listing not found")

func respondWith(t *testing.T, responder *Responder, err error) (*httptest.ResponseRecorder, ProblemDetail) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/v1/listings/7", nil)
	responder.RespondError(c, err)

	var body ProblemDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestRespondError_MapsSentinel(t *testing.T) {
	responder := NewResponder("", SentinelMapper(Sentinel{Err: errMissing, Problem: ErrNotFound}))

	rec, body := respondWith(t, responder, fmt.Errorf("load: %w", errMissing))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, ContentTypeProblemJSON, rec.Header().Get("Content-Type"))
	assert.Equal(t, TypeNotFound, body.Type)
	assert.Equal(t, "/v1/listings/7", body.Instance)
	assert.Contains(t, body.Detail, "listing not found")
}

func TestRespondError_UnknownErrorDoesNotLeak(t *testing.T) {
	rec, body := respondWith(t, DefaultResponder, errors.New("pq: password authentication failed for user admin"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, body.Detail, "password")
	assert.Equal(t, ErrInternal.Detail, body.Detail)
}

func TestRespondError_EmbeddedProblem(t *testing.T) {
	rec, body := respondWith(t, DefaultResponder, ErrConflict.WithDetail("already applied"))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "already applied", body.Detail)
}

func TestWithExtension_DoesNotMutateTemplate(t *testing.T) {
	_ = ErrValidation.WithExtension("fields", map[string]string{"name": "required"})
	assert.Nil(t, ErrValidation.Extensions)
}

func TestNewValidationProblem_SingleFieldDetail(t *testing.T) {
	problem := NewValidationProblem(map[string]string{"verified": "required"})

	assert.Equal(t, http.StatusBadRequest, problem.Status)
	assert.Equal(t, "verified: required", problem.Detail)
	assert.Equal(t, map[string]string{"verified": "required"}, problem.Extensions["fields"])
}
