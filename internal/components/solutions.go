package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

var (
	RoleSolutions = []Item{
		{"accountants", "lucide--briefcase-business", "primary"},
		{"financeTeam", "lucide--chart-pie", "secondary"},
		{"auditors", "lucide--scan-search", "accent"},
	}

	SizeSolutions = []Item{
		{"smallCompany", "lucide--store", "primary"},
		{"mediumCompany", "lucide--factory", "secondary"},
		{"largeCompany", "lucide--building-2", "accent"},
	}
)

func solutionGroup(p Page, titleKey string, items []Item) g.Node {
	return Div(
		Class("mt-12 xl:mt-16"),
		H3(Class("font-semibold text-xl text-center"), g.Text(p.T.Text(titleKey))),
		Div(
			Class("gap-6 grid grid-cols-1 md:grid-cols-3 mt-6"),
			g.Group(g.Map(items, func(it Item) g.Node {
				return itemCard(p, "solutions", it)
			})),
		),
	)
}

func Solutions(p Page) g.Node {
	return g.El("section",
		ID("solutions"),
		Class("solutions py-8 md:py-12 2xl:py-24 xl:py-16 container"),

		SectionHeader("solutions", "lucide--users", p.T.Text("solutions.title"), ""),

		solutionGroup(p, "solutions.byRole", RoleSolutions),
		solutionGroup(p, "solutions.bySize", SizeSolutions),
	)
}
