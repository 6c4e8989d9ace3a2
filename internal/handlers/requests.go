package handlers

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator. Validation errors report
// fields by their form name.
func NewValidator() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return &CustomValidator{validator: v}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// PageQuery is the selection carried in page and fragment URLs.
type PageQuery struct {
	Tab   string `query:"tab"`
	Image int    `query:"image"`
	Menu  bool   `query:"menu"`
}

// ContactRequest defines the DTO for the contact form.
type ContactRequest struct {
	Name    string `form:"name" validate:"required,max=100"`
	Email   string `form:"email" validate:"required,email"`
	Phone   string `form:"phone" validate:"omitempty,max=32"`
	Message string `form:"message" validate:"required,max=2000"`
}

func (r *ContactRequest) trim() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Message = strings.TrimSpace(r.Message)
}
