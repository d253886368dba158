package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Item is a catalog-keyed card: title and description live under Key.
type Item struct {
	Key   string
	Icon  string
	Color string
}

var FeatureItems = []Item{
	{"automatedAccounting", "lucide--bot", "primary"},
	{"aiCopilot", "lucide--lightbulb", "secondary"},
	{"accountsPayable", "lucide--file-text", "accent"},
	{"bankReconciliation", "lucide--landmark", "primary"},
	{"duplicateDetection", "lucide--search-check", "secondary"},
	{"approvalWorkflows", "lucide--circle-check", "accent"},
	{"accountsReceivable", "lucide--credit-card", "primary"},
	{"insightsAnalytics", "lucide--chart-column", "secondary"},
	{"documentManagement", "lucide--folder-open", "accent"},
	{"periodClosing", "lucide--calendar-range", "primary"},
	{"apiIntegration", "lucide--link", "secondary"},
	{"compliance", "lucide--shield-check", "accent"},
}

func itemCard(p Page, section string, it Item) g.Node {
	return Div(
		Class("hover:bg-base-200/40 border border-base-300 hover:border-base-300/60 transition-all duration-300 card"),
		g.Attr("data-key", it.Key),
		Div(
			Class("card-body"),
			IconBadge(it.Icon, it.Color),
			H3(Class("mt-4 font-semibold text-xl"), g.Text(p.T.Text(section+"."+it.Key+".title"))),
			P(Class("mt-2 text-sm text-base-content/80 leading-relaxed"), g.Text(p.T.Text(section+"."+it.Key+".description"))),
		),
	)
}

func Features(p Page) g.Node {
	return g.El("section",
		ID("features"),
		Class("features py-8 md:py-12 2xl:py-24 xl:py-16 container"),

		SectionHeader("features", "lucide--sparkles", p.T.Text("features.title"), ""),

		Div(
			Class("gap-6 2xl:gap-8 grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 mt-12 2xl:mt-24 xl:mt-16"),
			g.Group(g.Map(FeatureItems, func(it Item) g.Node {
				return itemCard(p, "features", it)
			})),
		),
	)
}
