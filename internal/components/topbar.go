package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/numiflow/website/internal/locale"
)

var navSections = []string{"features", "solutions", "pricing", "onboarding", "contact"}

func navLinks(p Page) []g.Node {
	return g.Map(navSections, func(section string) g.Node {
		return Li(
			A(Href("#"+section), Class("nav-link"), g.Text(p.T.Text("nav."+section))),
		)
	})
}

// Navigation is the fixed top bar with section anchors and the language switcher.
func Navigation(p Page) g.Node {
	return g.El("nav",
		g.Attr("data-scrolling", ""),
		g.Attr("data-at-top", "true"),
		g.Attr("aria-label", p.SiteName),
		Class("group fixed inset-x-0 z-[60] flex justify-center transition-[top] duration-500 data-[scrolling=down]:-top-full sm:container [&:not([data-scrolling=down])]:top-0 [&:not([data-scrolling=down])]:sm:top-4"),

		Div(
			Class("flex justify-between items-center group-data-[at-top=false]:bg-base-100 group-data-[at-top=false]:shadow px-3 sm:px-6 py-3 lg:py-1.5 sm:rounded-full w-full transition-all duration-500"),

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
								Class("btn drawer-button btn-ghost btn-square btn-sm"),
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
								Class("bg-base-100 p-4 w-80 min-h-full text-base-content menu"),
								g.Group(navLinks(p)),
							),
						),
					),
				),

				A(
					Href(p.Locale.Root()),
					Logo(p.SiteName),
				),
			),

			Ul(
				Class("hidden lg:inline-flex gap-2 px-0 menu menu-horizontal"),
				g.Group(navLinks(p)),
			),

			LanguageSwitcher(p.Locale),
		),
	)
}

// LanguageSwitcher links to every supported locale, marking the active one.
func LanguageSwitcher(active locale.Locale) g.Node {
	return Div(
		Class("language-switcher join"),
		g.Group(g.Map(locale.Options(active), func(o locale.Option) g.Node {
			class := "language-btn join-item btn btn-sm"
			if o.Active {
				class += " btn-primary active"
			} else {
				class += " btn-ghost"
			}
			return A(
				Href(o.Href),
				Class(class),
				g.Attr("hreflang", o.Locale.Tag().String()),
				g.If(o.Active, g.Attr("aria-current", "true")),
				g.Text(o.Label),
			)
		})),
	)
}
