package contact

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForm_Validate(t *testing.T) {
	valid := Form{Fullname: "Asha Rao", Email: "asha@example.com", Message: "Hello"}

	tests := []struct {
		name string
		form Form
		want map[string]string
	}{
		{"valid", valid, nil},
		{"all empty", Form{}, map[string]string{
			"fullname": "This field is required",
			"email":    "This field is required",
			"message":  "This field is required",
		}},
		{"bad email", Form{Fullname: "A", Email: "not-an-email", Message: "m"}, map[string]string{
			"email": "Please enter a valid email address",
		}},
		{"long name", Form{Fullname: strings.Repeat("a", 121), Email: "a@example.com", Message: "m"}, map[string]string{
			"fullname": "Must be at most 120 characters",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.form.Validate())
		})
	}
}

func TestForm_NormalizeTrimsWhitespace(t *testing.T) {
	f := Form{Fullname: "  Asha ", Email: " asha@example.com\n", Message: "\t  "}.Normalize()

	assert.Equal(t, "Asha", f.Fullname)
	assert.Equal(t, "asha@example.com", f.Email)
	assert.Equal(t, map[string]string{"message": "This field is required"}, f.Validate())
}
