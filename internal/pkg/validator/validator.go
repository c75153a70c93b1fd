package validator

import (
	"fmt"
	"slices"

	"github.com/futig/touchdown/internal/entity"
)

// Validator checks field names, options and request bodies against the questionnaire
type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// ValidateTextField ensures field accepts free text
func (v *Validator) ValidateTextField(field entity.Field) error {
	switch field {
	case entity.FieldName, entity.FieldDealbreaker, entity.FieldVision, entity.FieldExtra:
		return nil
	default:
		return fmt.Errorf("%w: %q is not a text field", entity.ErrUnknownField, field)
	}
}

// ValidateSingleChoice ensures field is single-select and option is one of its options
func (v *Validator) ValidateSingleChoice(field entity.Field, option string) error {
	switch field {
	case entity.FieldStatus, entity.FieldGoals, entity.FieldWeekend:
	default:
		return fmt.Errorf("%w: %q is not a single-choice field", entity.ErrUnknownField, field)
	}
	return v.validateOption(field, option)
}

// ValidateLoveLanguage ensures option is one of the love language options
func (v *Validator) ValidateLoveLanguage(option string) error {
	return v.validateOption(entity.FieldLoveLanguages, option)
}

func (v *Validator) validateOption(field entity.Field, option string) error {
	if !slices.Contains(entity.OptionsFor(field), option) {
		return fmt.Errorf("%w: %q for %s", entity.ErrInvalidOption, option, field)
	}
	return nil
}
