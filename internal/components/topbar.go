package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type navItem struct {
	Label  string
	Anchor string
}

var navItems = []navItem{
	{"Solutions", "#solutions"},
	{"How It Works", "#how-it-works"},
	{"FAQ", "#faq"},
	{"Contact", "#contact"},
}

func Topbar() g.Node {
	return Div(
		Class("fixed inset-x-0 top-0 z-[60] flex justify-center"),

		Div(
			Class("flex justify-between items-center px-3 sm:px-6 py-3 w-full max-w-7xl text-white"),

			Div(
				Class("flex items-center gap-2"),

				Div(
					Class("lg:hidden flex-none"),
					Div(
						Class("drawer"),
						Input(
							ID("landing-menu-drawer"),
							Type("checkbox"),
							Class("drawer-toggle"),
						),
						Div(
							Class("drawer-content"),
							Label(
								g.Attr("for", "landing-menu-drawer"),
								Class("btn btn-ghost btn-square btn-sm"),
								Icon("lucide--menu size-4.5", ""),
							),
						),
						Div(
							Class("z-[50] drawer-side"),
							Label(
								g.Attr("for", "landing-menu-drawer"),
								g.Attr("aria-label", "close sidebar"),
								Class("drawer-overlay"),
							),
							Ul(
								Class("bg-white p-4 w-80 min-h-full text-gray-900 menu"),
								g.Group(g.Map(navItems, func(item navItem) g.Node {
									return Li(A(Href(item.Anchor), g.Text(item.Label)))
								})),
							),
						),
					),
				),

				A(Href("/"), Logo()),
			),

			Ul(
				Class("hidden lg:inline-flex gap-6 menu menu-horizontal"),
				g.Group(g.Map(navItems, func(item navItem) g.Node {
					return Li(A(Class("hover:text-sky-300 transition-colors"), Href(item.Anchor), g.Text(item.Label)))
				})),
			),

			A(
				Href("#contact"),
				Class("py-2 px-5 rounded-full bg-gradient-to-r from-blue-500 to-indigo-600 text-sm font-medium"),
				g.Text("Get Started"),
			),
		),
	)
}
