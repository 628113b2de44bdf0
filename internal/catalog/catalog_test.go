package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmbeddedContent(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.Len(t, c.FAQs(), 11)
	assert.Len(t, c.Solutions(), 9)
	assert.Len(t, c.Steps(), 4)
	assert.Len(t, c.Testimonials(), 3)
	assert.Equal(t, "What is gogetwell.ai?", c.FAQs()[0].Question)
	assert.Equal(t, []string{"all", "medical", "technology", "business", "communication"}, c.CategoryNames())
	assert.Equal(t, "hello@gogetwell.ai", c.Contact().Email)
	assert.Len(t, c.Hero().Stats, 3)
}

func TestContent_AccessorsReturnCopies(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	faqs := c.FAQs()
	faqs[0].Question = "mutated"
	solutions := c.Solutions()
	solutions[0].Category = "mutated"
	hero := c.Hero()
	hero.Stats[0].Value = "0"

	assert.Equal(t, "What is gogetwell.ai?", c.FAQs()[0].Question)
	assert.Equal(t, "technology", c.Solutions()[0].Category)
	assert.Equal(t, "2,100", c.Hero().Stats[0].Value)
}

func TestContent_HasCategory(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.True(t, c.HasCategory("all"))
	assert.True(t, c.HasCategory("medical"))
	assert.False(t, c.HasCategory("Medical"))
	assert.False(t, c.HasCategory("finance"))
}

func TestParse_Invalid(t *testing.T) {
	base := `
categories:
  - {name: all, label: All}
  - {name: medical, label: Medical}
solutions:
  - {title: Report, description: d, category: medical}
faqs:
  - {question: q, answer: a}
`
	tests := []struct {
		name      string
		yaml      string
		wantError string
	}{
		{"valid", base, ""},
		{"broken yaml", "faqs: [", "parsing catalog"},
		{"no faqs", `
categories: [{name: all}]
solutions: [{title: t, category: all}]
`, "no faqs defined"},
		{"no solutions", `
categories: [{name: all}]
faqs: [{question: q, answer: a}]
`, "no solutions defined"},
		{"missing all", `
categories: [{name: medical}]
solutions: [{title: t, category: medical}]
faqs: [{question: q, answer: a}]
`, `category "all" must be declared`},
		{"undeclared category", `
categories: [{name: all}]
solutions: [{title: t, category: finance}]
faqs: [{question: q, answer: a}]
`, `undeclared category "finance"`},
		{"solution tagged all", `
categories: [{name: all}]
solutions: [{title: t, category: all}]
faqs: [{question: q, answer: a}]
`, `undeclared category "all"`},
		{"duplicate category", `
categories: [{name: all}, {name: all}]
solutions: [{title: t, category: all}]
faqs: [{question: q, answer: a}]
`, "declared twice"},
		{"step gap", base + `
steps:
  - {number: 1, title: one}
  - {number: 3, title: three}
`, "numbered 3, want 2"},
		{"bad rating", base + `
testimonials:
  - {name: Ann, rating: 6}
`, "rating 6 outside 1..5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if tt.wantError == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantError)
		})
	}
}

func TestCategoryColor(t *testing.T) {
	assert.Equal(t, "from-sky-300 to-blue-500", CategoryColor("medical"))
	assert.Equal(t, "from-gray-300 to-gray-500", CategoryColor("unknown"))
}
