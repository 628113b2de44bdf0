// Package search narrows static record lists to the entries matching the
// visitor's filter state.
//
// Both the FAQ text search and the solutions category tabs go through
// Filter. Results keep source order, never contain anything absent from the
// source, and never share a backing array with it.
package search

import (
	"strings"

	"github.com/gogetwell/website/internal/catalog"
)

// Matcher reports whether a record belongs in the filtered view.
// A nil Matcher matches everything.
type Matcher[T any] func(T) bool

// Filter returns the records accepted by m, in source order.
func Filter[T any](records []T, m Matcher[T]) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if m == nil || m(r) {
			out = append(out, r)
		}
	}
	return out
}

// Contains matches records where the query is a case-insensitive substring
// of at least one field. An empty query matches everything.
func Contains[T any](query string, fields ...func(T) string) Matcher[T] {
	if query == "" {
		return nil
	}
	needle := strings.ToLower(query)
	return func(r T) bool {
		for _, field := range fields {
			if strings.Contains(strings.ToLower(field(r)), needle) {
				return true
			}
		}
		return false
	}
}

// TagEquals matches records whose tag equals tag exactly. An empty tag or
// the all sentinel matches everything.
func TagEquals[T any](tag, all string, tagOf func(T) string) Matcher[T] {
	if tag == "" || tag == all {
		return nil
	}
	return func(r T) bool {
		return tagOf(r) == tag
	}
}

// FAQs filters by question OR answer text.
func FAQs(records []catalog.FAQ, query string) []catalog.FAQ {
	return Filter(records, Contains(query,
		func(f catalog.FAQ) string { return f.Question },
		func(f catalog.FAQ) string { return f.Answer },
	))
}

// Solutions filters by category tab.
func Solutions(records []catalog.Solution, category string) []catalog.Solution {
	return Filter(records, TagEquals(category, catalog.AllCategories,
		func(s catalog.Solution) string { return s.Category },
	))
}

// NormalizeCategory maps a requested tab onto a declared one, falling back
// to the all tab.
func NormalizeCategory(content *catalog.Content, category string) string {
	if category == "" || !content.HasCategory(category) {
		return catalog.AllCategories
	}
	return category
}
