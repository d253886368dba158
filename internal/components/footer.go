package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// PageFooter is the site footer with its link columns and language switcher.
func PageFooter(p Page) g.Node {
	return g.El("footer",
		Class("relative"),

		Div(Class("z-0 absolute inset-0 opacity-20 grainy")),

		Div(
			Class("z-[2] relative pt-8 md:pt-12 xl:pt-16 container"),

			Div(
				Class("gap-6 grid grid-cols-2 md:grid-cols-4"),

				Div(
					Class("col-span-2"),
					A(Href(p.Locale.Root()), Logo(p.SiteName)),
					P(
						Class("mt-3 max-sm:text-sm text-base-content/80"),
						g.Text(p.T.Text("hero.subtitle")),
					),
				),

				Div(
					Class("col-span-2"),
					Div(
						Class("flex flex-wrap gap-x-6 gap-y-1.5 text-base-content/80"),
						g.Group(g.Map(navSections, func(section string) g.Node {
							return A(Href("#"+section), g.Text(p.T.Text("nav."+section)))
						})),
					),
				),
			),

			Div(
				Class("flex flex-wrap justify-between items-center gap-3 mt-12 py-6 border-t border-base-300"),
				P(g.Text(p.T.Text("footer.copyright"))),
				Div(
					Class("flex items-center gap-4 text-sm text-base-content/80"),
					A(Href("/privacy"), g.Text(p.T.Text("footer.privacy"))),
					A(Href("/terms"), g.Text(p.T.Text("footer.terms"))),
					LanguageSwitcher(p.Locale),
				),
			),
		),
	)
}
