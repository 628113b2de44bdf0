package handlers

import (
	"net/http"
	"strconv"

	"github.com/gogetwell/website/internal/components"
	"github.com/gogetwell/website/internal/search"
)

// pageState reads the filter state and contact flash from the query string.
// The search text is used as typed. Unknown categories fall back to all and
// a bad slide index to the first.
func (h *Handler) pageState(r *http.Request) components.PageState {
	q := r.URL.Query()

	state := components.PageState{
		Query:    q.Get("q"),
		Category: search.NormalizeCategory(h.content, q.Get("category")),
	}

	if t, err := strconv.Atoi(q.Get("t")); err == nil {
		state.Testimonial = components.WrapIndex(t, len(h.content.Testimonials()))
	}

	switch components.ContactStatus(q.Get("contact")) {
	case components.ContactSent:
		state.Contact.Status = components.ContactSent
	case components.ContactFailed:
		state.Contact.Status = components.ContactFailed
	}

	return state
}
