// Package forms collects user input and validates it before anything is sent
// to the backend. A validation failure blocks submission entirely; no network
// call is made for an invalid form.
package forms

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/addisfleet/transport-admin/internal/api"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// SignupForm is the account-creation form.
type SignupForm struct {
	FullName   string `validate:"required"`
	Email      string `validate:"required,email"`
	Phone      string `validate:"required"`
	Password   string `validate:"required,min=8"`
	Department string `validate:"required"`
}

// Validate checks required fields and formats.
func (f SignupForm) Validate() error {
	return fieldError(validate.Struct(f))
}

// Payload maps the form onto the signup request body.
func (f SignupForm) Payload() api.SignupRequest {
	return api.SignupRequest{
		FullName:   f.FullName,
		Email:      f.Email,
		Phone:      f.Phone,
		Password:   f.Password,
		Department: f.Department,
	}
}

// TransportRequestForm is the trip-request form.
type TransportRequestForm struct {
	StartDay    string `validate:"required"`
	StartTime   string `validate:"required"`
	ReturnDay   string `validate:"required"`
	Destination string `validate:"required"`
	Reason      string `validate:"required"`
	Employees   []int  `validate:"required,min=1"`
}

// Validate checks required fields; at least one employee must be selected.
func (f TransportRequestForm) Validate() error {
	return fieldError(validate.Struct(f))
}

// Payload maps the form onto the creation request body.
func (f TransportRequestForm) Payload() api.CreateTransportRequest {
	return api.CreateTransportRequest{
		StartDay:    f.StartDay,
		StartTime:   f.StartTime,
		ReturnDay:   f.ReturnDay,
		Employees:   f.Employees,
		Destination: f.Destination,
		Reason:      f.Reason,
	}
}

// RefuelingForm records a refueling entry. There is no backend endpoint for
// it; the form is local-only and validation is all it does.
type RefuelingForm struct {
	Vehicle  string  `validate:"required"`
	Date     string  `validate:"required"`
	Liters   float64 `validate:"required,gt=0"`
	Odometer int     `validate:"required,gt=0"`
}

// Validate checks required fields and value ranges.
func (f RefuelingForm) Validate() error {
	return fieldError(validate.Struct(f))
}

// fieldError rewrites the first validator error into a short field-level
// message suitable for display next to the form.
func fieldError(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", field)
	case "email":
		return fmt.Errorf("%s must be a valid email address", field)
	case "min":
		return fmt.Errorf("%s must have at least %s", field, fe.Param())
	case "gt":
		return fmt.Errorf("%s must be greater than %s", field, fe.Param())
	default:
		return fmt.Errorf("%s is invalid", field)
	}
}
