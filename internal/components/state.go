package components

import (
	"github.com/gogetwell/website/internal/contact"
)

// PageState is the visitor's view of the page: filters, carousel position
// and the outcome of a contact submission.
type PageState struct {
	Query       string
	Category    string
	Testimonial int
	Contact     ContactState
}

type ContactStatus string

const (
	ContactIdle        ContactStatus = ""
	ContactSent        ContactStatus = "sent"
	ContactFailed      ContactStatus = "failed"
	ContactRateLimited ContactStatus = "rate_limited"
	ContactInvalid     ContactStatus = "invalid"
)

type ContactState struct {
	Status ContactStatus
	Values contact.Form
	Errors map[string]string
}
