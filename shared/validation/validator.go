// Package validation wires go-playground/validator as Echo's request
// validator, grounded on the teacher's shared/utils.NewValidator()
// convention (services/weatherService validates ReqRegisterAlarm the
// same way).
package validation

import "github.com/go-playground/validator/v10"

type EchoValidator struct {
	validator *validator.Validate
}

func New() *EchoValidator {
	return &EchoValidator{validator: validator.New()}
}

func (v *EchoValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}
