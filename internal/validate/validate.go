// ABOUTME: Struct validation built on go-playground/validator.
// ABOUTME: Maps validator failures to storage.ErrValidation with readable field messages.

package validate

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/fitpro/fitpro/internal/storage"
)

var v = validator.New(validator.WithRequiredStructEnabled())

// Struct validates the tagged fields of any model struct. The first
// failing field is reported; callers surface the message to the user.
func Struct(i any) error {
	err := v.Struct(i)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return fmt.Errorf("%w: %v", storage.ErrValidation, err)
	}
	first := errs[0]
	return fmt.Errorf("%w: field %s failed on %q", storage.ErrValidation, first.Field(), first.Tag())
}
