package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

var onboardingPhases = []Item{
	{"foundation", "lucide--layers", "primary"},
	{"validation", "lucide--list-checks", "secondary"},
}

func Onboarding(p Page) g.Node {
	return g.El("section",
		ID("onboarding"),
		Class("onboarding py-8 md:py-12 2xl:py-24 xl:py-16 container"),

		SectionHeader("onboarding", "lucide--rocket", p.T.Text("onboarding.title"), p.T.Text("onboarding.subtitle")),

		Div(
			Class("gap-6 grid grid-cols-1 md:grid-cols-2 mt-12 xl:mt-16"),
			g.Group(g.Map(onboardingPhases, func(phase Item) g.Node {
				key := "onboarding." + phase.Key
				return Div(
					Class("card border border-base-300"),
					g.Attr("data-phase", phase.Key),
					Div(
						Class("card-body"),
						Div(
							Class("flex items-center gap-3"),
							IconBadge(phase.Icon, phase.Color),
							H3(Class("font-semibold text-xl"), g.Text(p.T.Text(key+".title"))),
						),
						CheckList("mt-4 space-y-2 text-base-content/80", p.T.List(key+".items")),
					),
				)
			})),
		),
	)
}
