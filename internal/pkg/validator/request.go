package validator

import (
	"fmt"

	"github.com/futig/touchdown/internal/entity"
)

// ValidateUpdateField validates a free-text update request
func (v *Validator) ValidateUpdateField(req *entity.UpdateFieldRequest) error {
	if req.Value == nil {
		return fmt.Errorf("%w: value", entity.ErrMissingField)
	}
	return nil
}

// ValidateSelectOption validates an option pick request
func (v *Validator) ValidateSelectOption(req *entity.SelectOptionRequest) error {
	if req.Option == "" {
		return fmt.Errorf("%w: option", entity.ErrMissingField)
	}
	return nil
}
