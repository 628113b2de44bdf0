package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/gogetwell/website/internal/catalog"
)

func FAQ(state PageState, faqs []catalog.FAQ) g.Node {
	return Section(
		ID("faq"),
		Class("min-h-screen bg-gradient-to-b from-[#e8f4ff] to-[#f5f0ff] py-20 px-4 sm:px-6 lg:px-8"),
		Div(
			Class("max-w-4xl mx-auto"),

			Div(
				Class("relative mb-16 reveal text-center py-12 px-6"),
				Icon("lucide--circle-help size-16 text-[#4169e1]", ""),
				H2(Class("mt-6 text-4xl font-bold text-[#2a3b80] mb-4"), g.Text("Frequently Asked Questions")),
				P(Class("text-lg text-[#516096] max-w-2xl mx-auto mb-8"), g.Text("Everything you need to know about our healthcare platform and services")),
				Div(Class("h-1 w-24 bg-gradient-to-r from-[#7b68ee] to-[#4169e1] mx-auto rounded-full")),
			),

			Form(
				Method("get"),
				Action("/#faq"),
				Class("mb-12 relative max-w-lg mx-auto"),
				g.Attr("role", "search"),
				g.If(state.Category != "" && state.Category != catalog.AllCategories,
					Input(Type("hidden"), Name("category"), Value(state.Category)),
				),
				g.If(state.Testimonial != 0,
					Input(Type("hidden"), Name("t"), Value(strconv.Itoa(state.Testimonial))),
				),
				Input(
					ID("faq-search"),
					Type("search"),
					Name("q"),
					Value(state.Query),
					Placeholder("Search questions..."),
					AutoComplete("off"),
					g.Attr("aria-label", "Search questions"),
					g.Attr("aria-controls", "faq-list"),
					Class("w-full px-5 py-4 pl-12 bg-white border-2 border-[#e9e3ff] rounded-full focus:outline-none focus:border-[#7b68ee] text-[#2a3b80] shadow-md"),
				),
				Span(Class("absolute left-4 top-1/2 -translate-y-1/2"), Icon("lucide--search size-5 text-[#7b68ee]", "")),
			),

			FAQList(faqs),

			Div(
				Class("mt-16 text-center reveal"),
				H3(Class("text-2xl font-semibold text-[#2a3b80] mb-4"), g.Text("Still have questions?")),
				P(Class("text-[#516096] mb-6"), g.Text("Our support team is here to help you with any other queries")),
				A(
					Href("#contact"),
					Class("inline-block px-8 py-3 bg-gradient-to-r from-[#7b68ee] to-[#4169e1] text-white rounded-full font-medium"),
					g.Text("Contact Support"),
				),
			),
		),
	)
}

// FAQList is the accordion, re-rendered as the visitor types. The first
// entry starts open.
func FAQList(faqs []catalog.FAQ) g.Node {
	if len(faqs) == 0 {
		return Div(
			ID("faq-list"),
			Class("text-center py-10"),
			g.Attr("aria-live", "polite"),
			P(Class("text-[#516096] text-lg"), g.Text("No matching questions found. Try a different search term.")),
		)
	}

	items := make([]g.Node, 0, len(faqs))
	for i, f := range faqs {
		items = append(items, faqItem(f, i == 0))
	}

	return Div(
		ID("faq-list"),
		Class("space-y-4"),
		g.Attr("aria-live", "polite"),
		g.Group(items),
	)
}

func faqItem(f catalog.FAQ, open bool) g.Node {
	return Details(
		Class("group bg-white rounded-xl shadow-md overflow-hidden hover:shadow-lg transition-shadow duration-300"),
		g.If(open, g.Attr("open")),
		Summary(
			Class("w-full px-6 py-5 flex items-center justify-between cursor-pointer list-none hover:bg-[#f8f6ff]"),
			H3(Class("text-lg font-medium text-[#2a3b80]"), g.Text(f.Question)),
			Span(Class("ml-2 transition-transform group-open:rotate-180"), Icon("lucide--chevron-down size-6 text-[#4169e1]", "")),
		),
		Div(
			Class("px-6 py-5 border-t border-[#e9e3ff] bg-[#f8f6ff]"),
			P(Class("text-[#516096] leading-relaxed"), g.Text(f.Answer)),
		),
	)
}
