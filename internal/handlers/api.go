package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gogetwell/website/internal/catalog"
	"github.com/gogetwell/website/internal/contact"
	"github.com/gogetwell/website/internal/search"
	"github.com/gogetwell/website/pkg/apperror"
)

const maxBodyBytes = 64 << 10

// ListResponse is a filtered view as served by the JSON API.
type ListResponse[T any] struct {
	Query string `json:"query"`
	Total int    `json:"total"`
	Count int    `json:"count"`
	Items []T    `json:"items"`
}

type ContactResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *Handler) FAQAPI(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	all := h.content.FAQs()
	faqs := search.FAQs(all, query)
	h.observe("faq", len(faqs))

	writeJSON(w, http.StatusOK, ListResponse[catalog.FAQ]{
		Query: query,
		Total: len(all),
		Count: len(faqs),
		Items: faqs,
	})
}

// SolutionsAPI filters by category. Unlike the page, an unknown category is
// rejected rather than widened to all.
func (h *Handler) SolutionsAPI(w http.ResponseWriter, r *http.Request) {
	category := strings.TrimSpace(r.URL.Query().Get("category"))
	if category == "" {
		category = catalog.AllCategories
	}
	if !h.content.HasCategory(category) {
		apperror.WriteJSON(w, apperror.NewBadRequest("Unknown category").WithDetails(map[string]any{
			"category": category,
			"valid":    h.content.CategoryNames(),
		}))
		return
	}

	all := h.content.Solutions()
	solutions := search.Solutions(all, category)
	h.observe("solutions", len(solutions))

	writeJSON(w, http.StatusOK, ListResponse[catalog.Solution]{
		Query: category,
		Total: len(all),
		Count: len(solutions),
		Items: solutions,
	})
}

func (h *Handler) SubmitContactAPI(w http.ResponseWriter, r *http.Request) {
	var form contact.Form
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&form); err != nil {
		apperror.WriteJSON(w, apperror.NewBadRequest("Invalid JSON body").WithInternal(err))
		return
	}

	sub, err := h.contact.Submit(r.Context(), clientIP(r), form)
	if err != nil {
		apperror.WriteJSON(w, err)
		return
	}

	writeJSON(w, http.StatusAccepted, ContactResponse{ID: sub.ID, Status: "received"})
}
