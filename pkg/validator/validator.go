package validator

import (
	"github.com/go-playground/validator/v10"
)

// FieldError describes a single failed field for 400 responses
type FieldError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Param string `json:"param,omitempty"`
}

var validate = validator.New()

func ValidateStruct(data interface{}) []*FieldError {
	var errs []*FieldError
	err := validate.Struct(data)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			element := FieldError{
				Field: err.StructNamespace(),
				Tag:   err.Tag(),
				Param: err.Param(),
			}
			errs = append(errs, &element)
		}
	}
	return errs
}
