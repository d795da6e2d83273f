package rutval

import (
	"github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/rutkit"
)

// Tag is the struct tag name added by Register.
const Tag = "rut"

// Register adds the RUT validation to v. A tagged field passes when it
// holds a well-formed RUT string whose check digit matches its number.
func Register(v *validator.Validate) error {
	return v.RegisterValidation(Tag, isRut)
}

func isRut(fl validator.FieldLevel) bool {
	return rutkit.IsValid(fl.Field().String())
}
