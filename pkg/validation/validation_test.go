package validation_test

import (
	"errors"
	"testing"

	"go-jobportal-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type sample struct {
	Username string `validate:"required,min=3"`
	Email    string `validate:"required,email"`
	Phone    string `validate:"omitempty,valid_phone"`
	Age      int    `validate:"gte=0"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func TestFieldErrors(t *testing.T) {
	v := newValidator()

	err := v.Struct(sample{Username: "ab", Email: "nope", Age: -1})
	assert.Error(t, err)
	assert.True(t, validation.IsValidationError(err))

	fields := validation.FieldErrors(err)
	assert.Equal(t, "must be at least 3 characters", fields["username"])
	assert.Equal(t, "must be a valid email address", fields["email"])
	assert.Equal(t, "must be 0 or greater", fields["age"])
}

func TestFieldErrorsRequired(t *testing.T) {
	v := newValidator()

	fields := validation.FieldErrors(v.Struct(sample{}))
	assert.Equal(t, "is required", fields["username"])
	assert.Equal(t, "is required", fields["email"])
}

func TestFieldErrorsNonValidation(t *testing.T) {
	err := errors.New("boom")
	assert.False(t, validation.IsValidationError(err))
	assert.Equal(t, map[string]string{"error": "boom"}, validation.FieldErrors(err))
}

func TestValidPhone(t *testing.T) {
	v := newValidator()

	assert.NoError(t, v.Struct(sample{Username: "alice", Email: "a@b.co", Phone: "+4915112345678"}))
	assert.NoError(t, v.Struct(sample{Username: "alice", Email: "a@b.co", Phone: "5551234"}))
	assert.Error(t, v.Struct(sample{Username: "alice", Email: "a@b.co", Phone: "555-1234"}))
	assert.Error(t, v.Struct(sample{Username: "alice", Email: "a@b.co", Phone: "123"}))
}
