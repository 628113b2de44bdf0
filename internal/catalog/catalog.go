// Package catalog holds the static content of the landing page.
//
// Content is defined at build time in content.yaml, embedded into the
// binary and parsed once at startup. Nothing mutates it afterwards:
// accessors hand out copies.
package catalog

import (
	_ "embed"
	"fmt"
	"slices"

	"go.uber.org/fx"
	"gopkg.in/yaml.v3"
)

// AllCategories is the sentinel tab that shows every solution.
const AllCategories = "all"

//go:embed content.yaml
var content []byte

var Module = fx.Module("catalog",
	fx.Provide(Load),
)

// FAQ is a question/answer pair.
type FAQ struct {
	Question string `yaml:"question" json:"question"`
	Answer   string `yaml:"answer" json:"answer"`
}

// Solution is a feature entry shown in the solutions grid.
type Solution struct {
	Icon        string `yaml:"icon" json:"icon"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Category    string `yaml:"category" json:"category"`
}

// Category is a tab of the solutions grid.
type Category struct {
	Name  string `yaml:"name" json:"name"`
	Label string `yaml:"label" json:"label"`
}

type Step struct {
	Number      int    `yaml:"number"`
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type Testimonial struct {
	Name    string `yaml:"name"`
	Role    string `yaml:"role"`
	Company string `yaml:"company"`
	Image   string `yaml:"image"`
	Text    string `yaml:"text"`
	Rating  int    `yaml:"rating"`
}

// Card is an icon, title and one-line description.
type Card struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type Stat struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

type Hero struct {
	Badge        string `yaml:"badge"`
	Headline     string `yaml:"headline"`
	Subline      string `yaml:"subline"`
	PrimaryCTA   string `yaml:"primary_cta"`
	SecondaryCTA string `yaml:"secondary_cta"`
	CardCTA      string `yaml:"card_cta"`
	Cards        []Card `yaml:"cards"`
	Stats        []Stat `yaml:"stats"`
}

type Site struct {
	Name        string `yaml:"name"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Tagline     string `yaml:"tagline"`
}

type ContactInfo struct {
	Phone    string `yaml:"phone"`
	Email    string `yaml:"email"`
	Location string `yaml:"location"`
}

type SocialLink struct {
	Label string `yaml:"label"`
	Icon  string `yaml:"icon"`
	URL   string `yaml:"url"`
}

type Link struct {
	Text string `yaml:"text"`
	Path string `yaml:"path"`
}

// Catalog is the full page content.
type Catalog struct {
	Site         Site          `yaml:"site"`
	Hero         Hero          `yaml:"hero"`
	Categories   []Category    `yaml:"categories"`
	Solutions    []Solution    `yaml:"solutions"`
	Steps        []Step        `yaml:"steps"`
	FAQs         []FAQ         `yaml:"faqs"`
	Testimonials []Testimonial `yaml:"testimonials"`
	Highlights   []Card        `yaml:"highlights"`
	Contact      ContactInfo   `yaml:"contact"`
	Social       []SocialLink  `yaml:"social"`
	FooterLinks  []Link        `yaml:"footer_links"`
}

// Content is the read-only view handed to the rest of the site.
type Content struct {
	c Catalog
}

// Load parses the embedded content.
func Load() (*Content, error) {
	return Parse(content)
}

// Parse parses and validates catalog YAML.
func Parse(data []byte) (*Content, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return &Content{c: c}, nil
}

// Validate checks the cross-references YAML cannot express.
func (c *Catalog) Validate() error {
	if len(c.FAQs) == 0 {
		return fmt.Errorf("no faqs defined")
	}
	if len(c.Solutions) == 0 {
		return fmt.Errorf("no solutions defined")
	}

	declared := make(map[string]bool, len(c.Categories))
	for _, cat := range c.Categories {
		if declared[cat.Name] {
			return fmt.Errorf("category %q declared twice", cat.Name)
		}
		declared[cat.Name] = true
	}
	if !declared[AllCategories] {
		return fmt.Errorf("category %q must be declared", AllCategories)
	}
	for _, s := range c.Solutions {
		if s.Category == AllCategories || !declared[s.Category] {
			return fmt.Errorf("solution %q has undeclared category %q", s.Title, s.Category)
		}
	}

	for i, s := range c.Steps {
		if s.Number != i+1 {
			return fmt.Errorf("step %q numbered %d, want %d", s.Title, s.Number, i+1)
		}
	}
	for _, t := range c.Testimonials {
		if t.Rating < 1 || t.Rating > 5 {
			return fmt.Errorf("testimonial from %q has rating %d outside 1..5", t.Name, t.Rating)
		}
	}
	return nil
}

func (c *Content) Site() Site                  { return c.c.Site }
func (c *Content) Contact() ContactInfo        { return c.c.Contact }
func (c *Content) FAQs() []FAQ                 { return slices.Clone(c.c.FAQs) }
func (c *Content) Solutions() []Solution       { return slices.Clone(c.c.Solutions) }
func (c *Content) Categories() []Category      { return slices.Clone(c.c.Categories) }
func (c *Content) Steps() []Step               { return slices.Clone(c.c.Steps) }
func (c *Content) Testimonials() []Testimonial { return slices.Clone(c.c.Testimonials) }
func (c *Content) Highlights() []Card          { return slices.Clone(c.c.Highlights) }
func (c *Content) Social() []SocialLink        { return slices.Clone(c.c.Social) }
func (c *Content) FooterLinks() []Link         { return slices.Clone(c.c.FooterLinks) }

// Hero returns the hero section with its own copies of cards and stats.
func (c *Content) Hero() Hero {
	h := c.c.Hero
	h.Cards = slices.Clone(h.Cards)
	h.Stats = slices.Clone(h.Stats)
	return h
}

// HasCategory reports whether name is a declared tab.
func (c *Content) HasCategory(name string) bool {
	return slices.ContainsFunc(c.c.Categories, func(cat Category) bool {
		return cat.Name == name
	})
}

// CategoryNames lists the declared tabs in display order.
func (c *Content) CategoryNames() []string {
	names := make([]string, 0, len(c.c.Categories))
	for _, cat := range c.c.Categories {
		names = append(names, cat.Name)
	}
	return names
}

// CategoryColor returns the gradient classes for a category badge.
func CategoryColor(category string) string {
	switch category {
	case "technology":
		return "from-emerald-300 to-teal-500"
	case "business":
		return "from-amber-300 to-orange-500"
	case "communication":
		return "from-fuchsia-300 to-purple-500"
	case "medical":
		return "from-sky-300 to-blue-500"
	default:
		return "from-gray-300 to-gray-500"
	}
}
