package handlers

import (
	"fmt"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Shared validator for form structs. "password" enforces the account
// password policy: 12+ characters with upper, lower, digit and symbol.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		return strongPassword(fl.Field().String())
	})
	return v
}

func strongPassword(s string) bool {
	if len(s) < 12 {
		return false
	}
	var upper, lower, digit, symbol bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}
	return upper && lower && digit && symbol
}

// fieldMessages maps validation failures to the messages shown on the
// originating form.
var fieldMessages = map[string]string{
	"FirstName": "Please provide a first name.",
	"LastName":  "Please provide a last name.",
	"Email":     "A valid email address is required.",
	"Password":  "Password does not meet requirements.",
	"Name":      "Please provide a valid classification name.",
	"Make":      "Please provide the vehicle make.",
	"Model":     "Please provide the vehicle model.",
	"Year":      "Please provide a valid year.",
	"Price":     "Please provide a valid price.",
	"Miles":     "Please provide a valid mileage.",
	"Color":     "Please provide the vehicle color.",

	"Description":      "Please provide a description.",
	"Image":            "Please provide an image path.",
	"Thumbnail":        "Please provide a thumbnail path.",
	"ClassificationID": "Please choose a classification.",
}

// formErrors turns validator output into per-field user messages.
func formErrors(err error) []string {
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{"Invalid form submission."}
	}
	msgs := make([]string, 0, len(errs))
	for _, fe := range errs {
		if msg, ok := fieldMessages[fe.Field()]; ok {
			msgs = append(msgs, msg)
		} else {
			msgs = append(msgs, fmt.Sprintf("Invalid value for %s.", fe.Field()))
		}
	}
	return msgs
}
