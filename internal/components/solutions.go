package components

import (
	"net/url"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/gogetwell/website/internal/catalog"
)

func Solutions(state PageState, categories []catalog.Category, solutions []catalog.Solution) g.Node {
	return Section(
		ID("solutions"),
		Class("py-24 px-4 md:px-8 relative overflow-hidden"),

		Div(Class("absolute inset-0 -z-10 bg-[#111439]/5")),

		Div(
			Class("max-w-7xl mx-auto"),
			SectionHeading("SOLUTIONS", "Innovative Healthcare Technology",
				"Discover our range of AI-powered solutions designed specifically for healthcare providers"),
			SolutionsBody(state, categories, solutions),
		),
	)
}

// SolutionsBody is the tab strip and grid, re-rendered when a tab changes.
func SolutionsBody(state PageState, categories []catalog.Category, solutions []catalog.Solution) g.Node {
	return Div(
		ID("solutions-body"),

		Div(
			Class("mb-12 flex flex-wrap justify-center gap-2"),
			g.Attr("role", "tablist"),
			g.Group(g.Map(categories, func(c catalog.Category) g.Node {
				active := c.Name == state.Category
				classes := "px-6 py-2 rounded-full text-sm font-medium transition-all duration-300 bg-white/80 hover:bg-white text-gray-600 border border-gray-200"
				if active {
					classes = "px-6 py-2 rounded-full text-sm font-medium transition-all duration-300 bg-[#111439] text-white shadow-lg"
				}
				return A(
					Href(pageURL(state, url.Values{"category": {c.Name}}, "solutions")),
					Class(classes),
					g.Attr("role", "tab"),
					g.Attr("aria-selected", boolAttr(active)),
					g.Attr("data-category", c.Name),
					g.Text(c.Label),
				)
			})),
		),

		SolutionGrid(solutions),
	)
}

func SolutionGrid(solutions []catalog.Solution) g.Node {
	if len(solutions) == 0 {
		return Div(
			ID("solutions-grid"),
			Class("text-center py-10"),
			P(Class("text-gray-600 text-lg"), g.Text("No solutions in this category yet.")),
		)
	}

	return Div(
		ID("solutions-grid"),
		Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-6 md:gap-8"),
		g.Group(g.Map(solutions, solutionCard)),
	)
}

func solutionCard(s catalog.Solution) g.Node {
	return Div(
		Class("relative group"),
		g.Attr("data-category", s.Category),
		Div(
			Class("relative bg-white/90 rounded-2xl overflow-hidden shadow-lg border border-white h-full transition-all duration-500 group-hover:shadow-xl group-hover:-translate-y-1"),

			Div(
				Class("absolute -right-8 -top-8 overflow-hidden"),
				Div(
					Class("bg-gradient-to-br "+catalog.CategoryColor(s.Category)+" shadow-lg w-24 h-24 rotate-45 flex items-center justify-center opacity-90 group-hover:opacity-100"),
					Div(Class("-rotate-45 text-white"), Icon(s.Icon+" size-6", "")),
				),
			),

			Div(
				Class("p-8 pt-12"),
				Div(Class("mb-8 h-1 w-12 bg-gradient-to-r from-teal-400 to-purple-500 rounded-full")),
				H3(Class("text-xl font-semibold text-[#111439] mb-4 pr-12"), g.Text(s.Title)),
				P(Class("text-gray-600 line-clamp-3 group-hover:line-clamp-none"), g.Text(s.Description)),
			),

			Div(
				Class("absolute bottom-4 right-4"),
				Span(Class("text-xs font-medium py-1 px-2 rounded-full bg-gray-100 text-gray-600 capitalize"), g.Text(s.Category)),
			),
		),
	)
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
