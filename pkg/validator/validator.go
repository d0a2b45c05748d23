package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Validator validates structs tagged with `validate` rules.
type Validator interface {
	Validate(interface{}) error
	Var(value interface{}, rules string) error
}

type wrapper struct {
	v *validator.Validate
}

func New() Validator {
	return &wrapper{v: validator.New()}
}

func (w *wrapper) Validate(obj interface{}) error {
	if err := w.v.Struct(obj); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			e := errs[0]
			return fmt.Errorf("%s failed %s validation", e.Field(), e.Tag())
		}
		return err
	}
	return nil
}

func (w *wrapper) Var(value interface{}, rules string) error {
	return w.v.Var(value, rules)
}
