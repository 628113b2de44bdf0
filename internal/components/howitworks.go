package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/gogetwell/website/internal/catalog"
)

func HowItWorks(steps []catalog.Step) g.Node {
	return Section(
		ID("how-it-works"),
		Class("py-20 px-4 bg-white"),
		Div(
			Class("max-w-6xl mx-auto"),
			SectionHeading("", "How It Works", "Get quality healthcare in four simple steps through our streamlined platform."),

			Div(
				Class("relative grid grid-cols-1 md:grid-cols-2 lg:grid-cols-4 gap-8"),
				Div(Class("hidden lg:block absolute top-10 left-[12%] right-[12%] h-0.5 bg-gradient-to-r from-blue-200 via-indigo-300 to-purple-200")),
				g.Group(g.Map(steps, func(s catalog.Step) g.Node {
					return Div(
						Class("relative flex flex-col items-center text-center reveal"),
						Div(
							Class("relative"),
							Div(
								Class("w-20 h-20 rounded-full bg-gradient-to-br from-blue-500 to-indigo-600 flex items-center justify-center text-white shadow-lg"),
								Icon(s.Icon+" size-8", ""),
							),
							Span(
								Class("absolute -top-2 -right-2 w-8 h-8 rounded-full bg-white border-2 border-indigo-500 text-indigo-600 font-bold flex items-center justify-center"),
								g.Text(strconv.Itoa(s.Number)),
							),
						),
						H3(Class("mt-6 text-xl font-semibold text-gray-900"), g.Text(s.Title)),
						P(Class("mt-2 text-gray-600"), g.Text(s.Description)),
					)
				})),
			),
		),
	)
}
