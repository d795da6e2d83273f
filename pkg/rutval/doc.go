// Package rutval integrates RUT validation with go-playground/validator.
//
// It registers a "rut" struct tag that accepts any RUT string the root
// package parses and verifies, so request payloads can declare the rule
// next to the field instead of validating by hand.
//
// # Usage
//
//	import (
//		"github.com/go-playground/validator/v10"
//
//		"github.com/dmitrymomot/rutkit/pkg/rutval"
//	)
//
//	validate := validator.New(validator.WithRequiredStructEnabled())
//	if err := rutval.Register(validate); err != nil {
//		panic(err)
//	}
//
//	type SignupForm struct {
//		TaxID string `validate:"required,rut"`
//	}
//
// An empty string fails the rule; combine it with "omitempty" for
// optional fields.
//
// # Thread Safety
//
// Register mutates the given *validator.Validate and follows its locking
// rules: register validations during setup, before concurrent use.
package rutval
