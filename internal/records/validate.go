package records

import (
	"strconv"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/allexsabbir/uiu-ums-go/internal/errors"
)

var validate = newValidator()

// newValidator registers the maxbytes rule: field capacities are byte
// budgets in the fixed-width layout, so limits must count bytes, not
// runes. The built-in max counts runes and would accept a multibyte
// string that the codec then truncates, leaving the stored key different
// from the key the caller inserted with.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	err := v.RegisterValidation("maxbytes", func(fl validator.FieldLevel) bool {
		n, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return len(fl.Field().String()) <= n
	})
	if err != nil {
		panic(err)
	}
	return v
}

// Validate checks field constraints before a record reaches the store.
// The first failing field is reported as a ValidationError, which
// unwraps to ErrInvalidInput.
func Validate(rec any) error {
	err := validate.Struct(rec)
	if err == nil {
		return nil
	}
	if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperrors.NewValidationError(fe.Field(), "fails constraint "+fe.Tag())
	}
	return apperrors.NewValidationError("record", err.Error())
}
