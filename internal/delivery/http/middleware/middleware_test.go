package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-jobportal-backend/internal/delivery/http/middleware"
	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
	"go-jobportal-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("debug")
}

func TestErrorHandler(t *testing.T) {
	t.Run("AppError renders the structured body", func(t *testing.T) {
		r := gin.New()
		r.Use(middleware.ErrorHandler())
		r.GET("/jobs/99", func(c *gin.Context) {
			c.Error(apperror.NotFound("Job not found"))
		})

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/jobs/99", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		var body response.ErrorBody
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Not Found", body.Error)
		assert.Equal(t, "Job not found", body.Message)
		assert.Equal(t, "/jobs/99", body.Path)
	})

	t.Run("Validator errors render per-field messages", func(t *testing.T) {
		type payload struct {
			Email string `validate:"required,email"`
		}
		r := gin.New()
		r.Use(middleware.ErrorHandler())
		r.POST("/candidates", func(c *gin.Context) {
			c.Error(validator.New().Struct(payload{Email: "nope"}))
		})

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/candidates", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var body response.ValidationErrorBody
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Validation failed", body.Message)
		assert.Contains(t, body.Errors, "email")
	})

	t.Run("Unknown errors collapse to a generic 500", func(t *testing.T) {
		r := gin.New()
		r.Use(middleware.ErrorHandler())
		r.GET("/boom", func(c *gin.Context) {
			c.Error(errors.New("pool exhausted: connection refused to 10.0.0.3"))
		})

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "10.0.0.3")
	})
}

func TestRequireRole(t *testing.T) {
	router := func(roles []string) *gin.Engine {
		r := gin.New()
		r.Use(func(c *gin.Context) {
			if roles != nil {
				c.Set(string(domain.KeyUserRoles), roles)
			}
		})
		r.Use(middleware.RequireRole(domain.RoleRecruiter, domain.RoleAdmin))
		r.GET("/jobs", func(c *gin.Context) { c.Status(http.StatusOK) })
		return r
	}

	t.Run("Allows a matching role", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router([]string{domain.RoleRecruiter}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/jobs", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Rejects a non-matching role", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router([]string{domain.RoleCandidate}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/jobs", nil))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Rejects when roles are absent", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/jobs", nil))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("Generates an ID when absent", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})

	t.Run("Honors a caller-supplied ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "req-123")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		assert.Equal(t, "req-123", rec.Header().Get("X-Request-ID"))
	})
}
