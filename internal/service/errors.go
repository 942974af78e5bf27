package service

import (
	"errors"
	"fmt"

	"go-stockroom/pkg/validator"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrItemNotFound       = errors.New("inventory item not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderNotOpen       = errors.New("order is not open")
	ErrInsufficientStock  = errors.New("insufficient stock remaining")
	ErrDuplicateSKU       = errors.New("sku already exists")
	ErrDuplicateName      = errors.New("name already exists")
	ErrUsernameTaken      = errors.New("username already exists")
)

// ValidationError carries per-field failures so the REST layer can return
// them in the 400 body instead of a single opaque message.
type ValidationError struct {
	Fields []*validator.FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: field '%s' failed on tag '%s'", e.Fields[0].Field, e.Fields[0].Tag)
}

// validateStruct wraps pkg/validator so services return a typed error
func validateStruct(data interface{}) error {
	if errs := validator.ValidateStruct(data); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}
