package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the structured error payload shared by every failure
// response.
type ErrorBody struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
}

// ValidationErrorBody extends ErrorBody with a field → message map.
type ValidationErrorBody struct {
	ErrorBody
	Errors map[string]string `json:"errors"`
}

// CategoryLabel maps an HTTP status code to its error category label.
// Pure function; the single place the error-kind → label table lives.
func CategoryLabel(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "Bad Request"
	case http.StatusUnauthorized:
		return "Unauthorized"
	case http.StatusForbidden:
		return "Forbidden"
	case http.StatusNotFound:
		return "Not Found"
	case http.StatusInternalServerError:
		return "Internal Server Error"
	default:
		return http.StatusText(status)
	}
}

// JSON writes a success payload as-is.
func JSON(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

// Error writes the structured error body.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorBody{
		Timestamp: time.Now().UTC(),
		Status:    status,
		Error:     CategoryLabel(status),
		Message:   message,
		Path:      c.Request.URL.Path,
	})
}

// ValidationError writes the structured error body with per-field messages.
func ValidationError(c *gin.Context, fields map[string]string) {
	status := http.StatusBadRequest
	c.JSON(status, ValidationErrorBody{
		ErrorBody: ErrorBody{
			Timestamp: time.Now().UTC(),
			Status:    status,
			Error:     CategoryLabel(status),
			Message:   "Validation failed",
			Path:      c.Request.URL.Path,
		},
		Errors: fields,
	})
}
