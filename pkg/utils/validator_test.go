package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name string  `validate:"required"`
	Lat  float64 `validate:"latitude"`
	Mode string  `validate:"omitempty,oneof=a b"`
}

func TestValidateStruct(t *testing.T) {
	assert.Nil(t, ValidateStruct(sample{Name: "x", Lat: 12.9}))

	errs := ValidateStruct(sample{Lat: 120, Mode: "c"})
	assert.Equal(t, "This field is required", errs["Name"])
	assert.Equal(t, "Must be a valid latitude", errs["Lat"])
	assert.Equal(t, "Must be one of: a, b", errs["Mode"])
}

func TestFormatValidationErrors(t *testing.T) {
	out := FormatValidationErrors(map[string]string{"b": "two", "a": "one"})
	assert.Equal(t, "a: one; b: two", out)
}
