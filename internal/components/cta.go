package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/gogetwell/website/internal/catalog"
)

func CallToAction(highlights []catalog.Card) g.Node {
	return Section(
		ID("cta"),
		Class("py-20 px-4 text-white"),
		g.Attr("style", "background: linear-gradient(135deg, #1e3a8a 0%, #4f46e5 100%)"),
		Div(
			Class("max-w-6xl mx-auto"),
			Div(
				Class("text-center mb-12 reveal"),
				H2(Class("text-3xl md:text-5xl font-bold mb-4"), g.Text("Launch Your AI-Powered Healthcare Business")),
				P(Class("text-lg text-white/80 max-w-2xl mx-auto"), g.Text("Everything you need to attract, convert and care for international patients, in one platform.")),
			),

			Div(
				Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-6"),
				g.Group(g.Map(highlights, func(c catalog.Card) g.Node {
					return Div(
						Class("rounded-xl bg-white/10 backdrop-blur border border-white/20 p-6 reveal"),
						Div(Class("mb-4"), Icon(c.Icon+" size-8 text-blue-200", "")),
						H3(Class("text-xl font-semibold"), g.Text(c.Title)),
						P(Class("mt-2 text-white/75"), g.Text(c.Description)),
					)
				})),
			),

			Div(
				Class("mt-12 text-center"),
				A(
					Href("#contact"),
					Class("inline-flex items-center gap-2 py-4 px-10 rounded-full bg-white text-indigo-700 font-semibold shadow-lg hover:bg-blue-50"),
					g.Text("Create Your AI Store Now"),
					Icon("lucide--arrow-right size-5", ""),
				),
			),
		),
	)
}
