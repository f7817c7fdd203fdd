package middleware

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type phoneForm struct {
	Phone string `json:"phone" binding:"omitempty,idphone"`
}

type directionForm struct {
	Direction string `json:"direction" binding:"required,direction"`
}

func TestSetupValidator_IDPhone(t *testing.T) {
	SetupValidator()

	valid := []string{"081234567890", "6281234567890", "+6281234567890"}
	for _, phone := range valid {
		assert.NoError(t, binding.Validator.ValidateStruct(&phoneForm{Phone: phone}), phone)
	}

	invalid := []string{"12345", "0712345678", "+12812345678", "08abc"}
	for _, phone := range invalid {
		assert.Error(t, binding.Validator.ValidateStruct(&phoneForm{Phone: phone}), phone)
	}

	// Empty passes through omitempty
	assert.NoError(t, binding.Validator.ValidateStruct(&phoneForm{}))
}

func TestSetupValidator_Direction(t *testing.T) {
	SetupValidator()

	assert.NoError(t, binding.Validator.ValidateStruct(&directionForm{Direction: "in"}))
	assert.NoError(t, binding.Validator.ValidateStruct(&directionForm{Direction: "out"}))
	assert.Error(t, binding.Validator.ValidateStruct(&directionForm{Direction: "sideways"}))
	assert.Error(t, binding.Validator.ValidateStruct(&directionForm{}))
}

func TestFormatValidationErrors_UsesJSONFieldNames(t *testing.T) {
	SetupValidator()

	err := binding.Validator.ValidateStruct(&directionForm{Direction: "sideways"})
	require.Error(t, err)

	resp := FormatValidationErrors(err, "req-1")
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "req-1", resp.Error.RequestID)
	require.Len(t, resp.Error.Details, 1)
	assert.Equal(t, "direction", resp.Error.Details[0].Field)
	assert.Equal(t, "Direction must be 'in' or 'out'", resp.Error.Details[0].Message)
}
