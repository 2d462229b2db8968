package errors

import (
	"fmt"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type sample struct {
	Size  int `validate:"min=1"`
	Inner struct {
		Name string `validate:"required"`
	}
}

func TestValidationErrors(t *testing.T) {
	err := validator.New().Struct(sample{})
	wrapped := fmt.Errorf("invalid: %w", err)

	got := ValidationErrors(wrapped)
	assert.Equal(t, []ValidationError{
		{Field: "Size", Message: `failed on "min" (1)`},
		{Field: "Inner.Name", Message: `failed on "required"`},
	}, got)
}

func TestValidationErrors_Other(t *testing.T) {
	assert.Nil(t, ValidationErrors(fmt.Errorf("boom")))
	assert.Nil(t, ValidationErrors(nil))
}

func TestHTTPError(t *testing.T) {
	err := NewHTTPErrorWithCode(400, 40001, "Bad")
	assert.Equal(t, "40001: Bad", err.Error())
	assert.Equal(t, 404, NewHTTPError(404, "x").Code)
}
