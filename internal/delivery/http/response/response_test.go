package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-jobportal-backend/internal/delivery/http/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCategoryLabel(t *testing.T) {
	cases := map[int]string{
		http.StatusBadRequest:          "Bad Request",
		http.StatusUnauthorized:        "Unauthorized",
		http.StatusForbidden:           "Forbidden",
		http.StatusNotFound:            "Not Found",
		http.StatusInternalServerError: "Internal Server Error",
		http.StatusTeapot:              "I'm a teapot",
	}
	for status, label := range cases {
		assert.Equal(t, label, response.CategoryLabel(status))
	}
}

func TestErrorBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/jobs/99", nil)

	response.Error(c, http.StatusNotFound, "Job not found")

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body response.ErrorBody
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusNotFound, body.Status)
	assert.Equal(t, "Not Found", body.Error)
	assert.Equal(t, "Job not found", body.Message)
	assert.Equal(t, "/api/v1/jobs/99", body.Path)
	assert.False(t, body.Timestamp.IsZero())
}

func TestValidationErrorBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/candidates", nil)

	response.ValidationError(c, map[string]string{"email": "must be a valid email address"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body response.ValidationErrorBody
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Validation failed", body.Message)
	assert.Equal(t, "must be a valid email address", body.Errors["email"])
}
