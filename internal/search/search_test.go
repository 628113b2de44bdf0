package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogetwell/website/internal/catalog"
)

func loadContent(t *testing.T) *catalog.Content {
	t.Helper()
	c, err := catalog.Load()
	require.NoError(t, err)
	return c
}

func questions(faqs []catalog.FAQ) []string {
	out := make([]string, len(faqs))
	for i, f := range faqs {
		out[i] = f.Question
	}
	return out
}

func titles(solutions []catalog.Solution) []string {
	out := make([]string, len(solutions))
	for i, s := range solutions {
		out[i] = s.Title
	}
	return out
}

func TestFAQs_EmptyQueryIsIdentity(t *testing.T) {
	faqs := loadContent(t).FAQs()
	assert.Equal(t, faqs, FAQs(faqs, ""))
}

func TestFAQs_Website(t *testing.T) {
	got := questions(FAQs(loadContent(t).FAQs(), "website"))

	assert.Contains(t, got, "Can I customize the website for my healthcare services?")
	// "build customized websites" in the answer
	assert.Contains(t, got, "What is gogetwell.ai?")
	assert.NotContains(t, got, "How does the AI Agent assist me in my healthcare business?")
	assert.Equal(t, []string{
		"What is gogetwell.ai?",
		"What is the AI Front Office for Healthcare Agents?",
		"Can I customize the website for my healthcare services?",
		"How quickly can I get started with the platform?",
		"How does the platform help me attract more patients?",
	}, got)
}

func TestFAQs_CaseInsensitive(t *testing.T) {
	faqs := loadContent(t).FAQs()
	for _, pair := range [][2]string{{"AI", "ai"}, {"Website", "wEbSiTe"}, {"HIPAA", "hipaa"}} {
		assert.Equal(t, FAQs(faqs, pair[0]), FAQs(faqs, pair[1]), "%q vs %q", pair[0], pair[1])
	}
}

func TestFAQs_NoMatch(t *testing.T) {
	got := FAQs(loadContent(t).FAQs(), "zzz-no-such-text")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFAQs_Properties(t *testing.T) {
	faqs := loadContent(t).FAQs()
	before := loadContent(t).FAQs()

	for _, q := range []string{"a", "patient", "24/7", "—", " ", "SECURE", "gogetwell.ai?", "x"} {
		got := FAQs(faqs, q)
		require.LessOrEqual(t, len(got), len(faqs))

		needle := strings.ToLower(q)
		last := -1
		for _, f := range got {
			assert.True(t,
				strings.Contains(strings.ToLower(f.Question), needle) ||
					strings.Contains(strings.ToLower(f.Answer), needle),
				"%q does not match %q", f.Question, q)

			idx := indexOf(faqs, f)
			require.GreaterOrEqual(t, idx, 0, "%q not in source", f.Question)
			assert.Greater(t, idx, last, "order not preserved for %q", q)
			last = idx
		}
	}
	assert.Equal(t, before, faqs, "source mutated")
}

func TestSolutions_Medical(t *testing.T) {
	got := Solutions(loadContent(t).Solutions(), "medical")
	assert.Equal(t, []string{"Medical Report Analysis", "Comprehensive Healthcare Database"}, titles(got))
}

func TestSolutions_Tabs(t *testing.T) {
	solutions := loadContent(t).Solutions()

	tests := []struct {
		category string
		want     int
	}{
		{"all", 9},
		{"", 9},
		{"technology", 2},
		{"business", 3},
		{"communication", 2},
		{"Medical", 0},
		{"med", 0},
		{"finance", 0},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			got := Solutions(solutions, tt.category)
			assert.Len(t, got, tt.want)
			for _, s := range got {
				if tt.category != "all" && tt.category != "" {
					assert.Equal(t, tt.category, s.Category)
				}
			}
		})
	}
}

func TestFilter_ResultDoesNotAliasSource(t *testing.T) {
	src := []string{"a", "b", "c"}
	got := Filter[string](src, nil)
	got[0] = "z"
	assert.Equal(t, []string{"a", "b", "c"}, src)
}

func TestFilter_NoDuplicates(t *testing.T) {
	src := []string{"alpha", "beta", "alphabet"}
	m := Contains("alpha", func(s string) string { return s }, func(s string) string { return s + s })
	assert.Equal(t, []string{"alpha", "alphabet"}, Filter(src, m))
}

func TestNormalizeCategory(t *testing.T) {
	c := loadContent(t)
	assert.Equal(t, "all", NormalizeCategory(c, ""))
	assert.Equal(t, "all", NormalizeCategory(c, "finance"))
	assert.Equal(t, "medical", NormalizeCategory(c, "medical"))
}

func indexOf(faqs []catalog.FAQ, f catalog.FAQ) int {
	for i, candidate := range faqs {
		if candidate == f {
			return i
		}
	}
	return -1
}
