package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/gogetwell/website/internal/catalog"
)

func Hero(hero catalog.Hero) g.Node {
	return Div(
		Class("relative overflow-hidden text-white"),
		ID("hero"),
		g.Attr("style", "background: linear-gradient(135deg, #111439 0%, #0a0c26 100%)"),

		Topbar(),

		Div(Class("absolute inset-0 opacity-20 hero-particles")),

		Div(
			Class("relative max-w-7xl mx-auto px-4 pt-32 pb-16 grid grid-cols-1 lg:grid-cols-2 gap-12 items-center"),

			Div(
				Class("reveal"),
				H1(
					Class("text-4xl md:text-6xl font-bold leading-tight"),
					Span(Class("text-transparent bg-clip-text bg-gradient-to-r from-blue-400 to-indigo-500"), g.Text(hero.Badge)),
					Br(),
					g.Text(hero.Headline),
				),
				P(Class("mt-6 text-lg text-white/80 max-w-xl"), g.Text(hero.Subline)),
				Div(
					Class("mt-8 flex flex-wrap gap-4"),
					A(
						Href("#contact"),
						Class("inline-flex items-center gap-2 py-3 px-8 rounded-full bg-gradient-to-r from-blue-500 to-indigo-600 font-medium"),
						g.Text(hero.PrimaryCTA),
						Icon("lucide--arrow-right size-4", ""),
					),
					A(
						Href("#solutions"),
						Class("inline-flex items-center py-3 px-8 rounded-full border border-white/30 hover:bg-white/10"),
						g.Text(hero.SecondaryCTA),
					),
				),
			),

			Div(
				Class("reveal"),
				Div(
					Class("rounded-3xl bg-white/10 backdrop-blur-lg border border-white/20 p-8 shadow-2xl"),
					Div(
						Class("space-y-4"),
						g.Group(g.Map(hero.Cards, func(card catalog.Card) g.Node {
							return Div(
								Class("flex items-center gap-4 rounded-xl bg-white/5 p-4"),
								Div(Class("rounded-lg bg-blue-500/20 p-3"), Icon(card.Icon+" size-5 text-blue-300", "")),
								Div(
									H3(Class("font-medium"), g.Text(card.Title)),
									P(Class("text-sm text-white/70"), g.Text(card.Description)),
								),
							)
						})),
					),
					Div(
						Class("mt-6 text-center"),
						A(
							Href("#contact"),
							Class("inline-block py-2 px-6 rounded-full bg-white text-indigo-800 font-medium hover:bg-white/90 transition-all"),
							g.Text(hero.CardCTA),
						),
					),
				),
			),
		),

		Div(
			Class("relative max-w-4xl mx-auto px-4 pb-16 grid grid-cols-3 gap-6"),
			g.Group(g.Map(hero.Stats, func(s catalog.Stat) g.Node {
				return Div(
					Class("text-center"),
					Div(
						Class("text-3xl md:text-4xl font-bold"),
						g.Text(s.Value),
						Span(Class("text-blue-400 ml-1"), g.Text("+")),
					),
					P(Class("text-white/80 font-light"), g.Text(s.Label)),
				)
			})),
		),

		A(
			Href("#solutions"),
			Class("absolute bottom-4 left-1/2 -translate-x-1/2 animate-bounce"),
			Icon("lucide--chevron-down size-6", "Scroll to solutions"),
		),
	)
}
