package validator

import (
	"testing"

	"github.com/futig/touchdown/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestValidateTextField(t *testing.T) {
	v := New()

	for _, field := range []entity.Field{entity.FieldName, entity.FieldDealbreaker, entity.FieldVision, entity.FieldExtra} {
		assert.NoError(t, v.ValidateTextField(field), field)
	}

	for _, field := range []entity.Field{entity.FieldStatus, entity.FieldLoveLanguages, "nickname"} {
		assert.ErrorIs(t, v.ValidateTextField(field), entity.ErrUnknownField, field)
	}
}

func TestValidateSingleChoice(t *testing.T) {
	v := New()

	assert.NoError(t, v.ValidateSingleChoice(entity.FieldStatus, "Free Agent"))
	assert.NoError(t, v.ValidateSingleChoice(entity.FieldGoals, "Let’s see where it goes"))
	assert.NoError(t, v.ValidateSingleChoice(entity.FieldWeekend, "City adventures"))

	assert.ErrorIs(t, v.ValidateSingleChoice(entity.FieldStatus, "Married"), entity.ErrInvalidOption)
	assert.ErrorIs(t, v.ValidateSingleChoice(entity.FieldGoals, "Free Agent"), entity.ErrInvalidOption)
	assert.ErrorIs(t, v.ValidateSingleChoice(entity.FieldLoveLanguages, "Gifts"), entity.ErrUnknownField)
	assert.ErrorIs(t, v.ValidateSingleChoice(entity.FieldName, "Alex"), entity.ErrUnknownField)
}

func TestValidateLoveLanguage(t *testing.T) {
	v := New()

	assert.NoError(t, v.ValidateLoveLanguage("Quality time"))
	assert.ErrorIs(t, v.ValidateLoveLanguage("quality time"), entity.ErrInvalidOption)
}

func TestValidateRequests(t *testing.T) {
	v := New()
	empty := ""

	assert.NoError(t, v.ValidateUpdateField(&entity.UpdateFieldRequest{Value: &empty}))
	assert.ErrorIs(t, v.ValidateUpdateField(&entity.UpdateFieldRequest{}), entity.ErrMissingField)

	assert.NoError(t, v.ValidateSelectOption(&entity.SelectOptionRequest{Option: "Gifts"}))
	assert.ErrorIs(t, v.ValidateSelectOption(&entity.SelectOptionRequest{}), entity.ErrMissingField)
}
