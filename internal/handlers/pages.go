package handlers

import (
	"net"
	"net/http"

	"github.com/gogetwell/website/internal/components"
	"github.com/gogetwell/website/internal/contact"
	"github.com/gogetwell/website/internal/search"
	"github.com/gogetwell/website/pkg/apperror"
	"github.com/gogetwell/website/pkg/logger"
)

func (h *Handler) LandingPage(w http.ResponseWriter, r *http.Request) {
	h.renderLanding(w, http.StatusOK, h.pageState(r))
}

func (h *Handler) renderLanding(w http.ResponseWriter, status int, state components.PageState) {
	faqs := search.FAQs(h.content.FAQs(), state.Query)
	solutions := search.Solutions(h.content.Solutions(), state.Category)
	h.observe("faq", len(faqs))
	h.observe("solutions", len(solutions))

	h.render(w, status, components.LandingPage(components.Landing{
		Content:   h.content,
		State:     state,
		FAQs:      faqs,
		Solutions: solutions,
		Year:      h.now().Year(),
	}))
}

// FAQPartial renders just the FAQ accordion for the live search box.
func (h *Handler) FAQPartial(w http.ResponseWriter, r *http.Request) {
	state := h.pageState(r)
	faqs := search.FAQs(h.content.FAQs(), state.Query)
	h.observe("faq", len(faqs))
	h.render(w, http.StatusOK, components.FAQList(faqs))
}

// SolutionsPartial renders the tab strip and grid for the selected category.
func (h *Handler) SolutionsPartial(w http.ResponseWriter, r *http.Request) {
	state := h.pageState(r)
	solutions := search.Solutions(h.content.Solutions(), state.Category)
	h.observe("solutions", len(solutions))
	h.render(w, http.StatusOK, components.SolutionsBody(state, h.content.Categories(), solutions))
}

// SubmitContactForm handles the plain HTML form. Success redirects back to
// the page so a reload does not resubmit; failures re-render the form with
// the visitor's input and the field errors.
func (h *Handler) SubmitContactForm(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		h.log.Warn("bad contact form", logger.Error(err))
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	form := contact.Form{
		Fullname: r.PostForm.Get("fullname"),
		Email:    r.PostForm.Get("email"),
		Message:  r.PostForm.Get("message"),
	}

	if _, err := h.contact.Submit(r.Context(), clientIP(r), form); err != nil {
		appErr := apperror.As(err)
		state := h.pageState(r)
		state.Contact = components.ContactState{
			Status: contactStatus(appErr),
			Values: form,
			Errors: fieldErrors(appErr),
		}
		h.renderLanding(w, appErr.HTTPStatus, state)
		return
	}

	http.Redirect(w, r, "/?contact=sent#contact", http.StatusSeeOther)
}

func contactStatus(err *apperror.Error) components.ContactStatus {
	switch err.Code {
	case apperror.ErrValidation.Code:
		return components.ContactInvalid
	case apperror.ErrRateLimited.Code:
		return components.ContactRateLimited
	default:
		return components.ContactFailed
	}
}

func fieldErrors(err *apperror.Error) map[string]string {
	if err.Code != apperror.ErrValidation.Code {
		return nil
	}
	out := make(map[string]string, len(err.Details))
	for k, v := range err.Details {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}

// clientIP is the address the rate limiter keys on. RealIP has already
// replaced RemoteAddr with the forwarded address when one was sent.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
