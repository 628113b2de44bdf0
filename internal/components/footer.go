package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/gogetwell/website/internal/catalog"
)

func PageFooter(site catalog.Site, links []catalog.Link, social []catalog.SocialLink, year int) g.Node {
	return Footer(
		Class("bg-[#111439] text-white py-12 px-4"),
		Div(
			Class("max-w-7xl mx-auto"),
			Div(
				Class("flex flex-col md:flex-row justify-between gap-8"),
				Div(
					Class("max-w-sm"),
					Logo(),
					P(Class("mt-4 text-white/70"), g.Text(site.Tagline)),
					Div(Class("mt-6"), SocialLinks(social)),
				),
				Nav(
					Class("grid grid-cols-2 gap-x-12 gap-y-3"),
					g.Attr("aria-label", "Policies"),
					g.Group(g.Map(links, func(l catalog.Link) g.Node {
						return A(Href(l.Path), Class("text-white/70 hover:text-white"), g.Text(l.Text))
					})),
				),
			),
			Div(
				Class("mt-10 pt-6 border-t border-white/10 text-center text-sm text-white/60"),
				P(g.Text(fmt.Sprintf("© %d %s. All rights reserved.", year, site.Name))),
			),
		),
	)
}
