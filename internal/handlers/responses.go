package handlers

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var fieldLabels = map[string]string{
	"name":    "your name",
	"email":   "your email",
	"phone":   "a phone number",
	"message": "a message",
}

// FieldErrors maps each failed form field to a message for the visitor.
// Errors that are not validation errors yield nil.
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = fieldMessage(fe)
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	label := fieldLabels[fe.Field()]
	if label == "" {
		label = fe.Field()
	}
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Please enter %s.", label)
	case "email":
		return "Please enter a valid email address."
	case "max":
		return fmt.Sprintf("Please shorten %s to at most %s characters.", label, fe.Param())
	default:
		return fmt.Sprintf("Please check %s.", label)
	}
}
