package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/gogetwell/website/internal/catalog"
)

// Landing holds everything the landing page renders. FAQs and Solutions are
// the filtered views for the current state, not the full catalog.
type Landing struct {
	Content   *catalog.Content
	State     PageState
	FAQs      []catalog.FAQ
	Solutions []catalog.Solution
	Year      int
}

func LandingPage(l Landing) g.Node {
	site := l.Content.Site()

	return Layout(
		PageConfig{
			Title:       site.Title,
			Description: site.Description,
		},
		Hero(l.Content.Hero()),
		Main(
			Solutions(l.State, l.Content.Categories(), l.Solutions),
			HowItWorks(l.Content.Steps()),
			FAQ(l.State, l.FAQs),
			Testimonials(l.State, l.Content.Testimonials()),
			CallToAction(l.Content.Highlights()),
			ContactForm(l.State.Contact, l.Content.Contact(), l.Content.Social()),
		),
		PageFooter(site, l.Content.FooterLinks(), l.Content.Social(), l.Year),
	)
}
