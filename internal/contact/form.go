package contact

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Form is what the visitor typed into the contact form.
type Form struct {
	Fullname string `json:"fullname" validate:"required,max=120"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Message  string `json:"message" validate:"required,max=5000"`
}

// Submission is an accepted form, ready for delivery.
type Submission struct {
	ID         string    `json:"id"`
	Fullname   string    `json:"fullname"`
	Email      string    `json:"email"`
	Message    string    `json:"message"`
	RemoteAddr string    `json:"-"`
	ReceivedAt time.Time `json:"received_at"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Normalize trims surrounding whitespace from every field.
func (f Form) Normalize() Form {
	return Form{
		Fullname: strings.TrimSpace(f.Fullname),
		Email:    strings.TrimSpace(f.Email),
		Message:  strings.TrimSpace(f.Message),
	}
}

// Validate returns one message per invalid field, keyed by form field name.
// A nil map means the form is valid.
func (f Form) Validate() map[string]string {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"form": err.Error()}
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if _, seen := fields[fe.Field()]; seen {
			continue
		}
		fields[fe.Field()] = fieldMessage(fe)
	}
	return fields
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Please enter a valid email address"
	case "max":
		return fmt.Sprintf("Must be at most %s characters", fe.Param())
	default:
		return "Invalid value"
	}
}
