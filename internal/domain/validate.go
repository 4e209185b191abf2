package domain

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is shared by all entities in this package; validator caches
// struct metadata, so one instance is reused.
var validate = validator.New()

// checkFields runs struct-tag validation on v and translates the first
// failing rule into one of the package's sentinel errors. sentinels is keyed
// by "<StructField>.<tag>".
func checkFields(v interface{}, sentinels map[string]error) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		if sentinel, ok := sentinels[fe.StructField()+"."+fe.Tag()]; ok {
			return sentinel
		}
		return fmt.Errorf("%w: %s failed on %q", ErrValidation, fe.Field(), fe.Tag())
	}

	return fmt.Errorf("%w: %v", ErrValidation, err)
}
