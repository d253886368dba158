package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Landing is the full single-page site for p.Locale.
func Landing(p Page) g.Node {
	return Layout(
		PageConfig{
			Title:       p.T.Text("meta.title"),
			Description: p.T.Text("meta.description"),
			Locale:      p.Locale,
			SiteURL:     p.SiteURL,
		},
		Navigation(p),
		g.El("main",
			Class("landing"),
			Hero(p),
			Features(p),
			Solutions(p),
			Pricing(p),
			Onboarding(p),
			ContactSection(p),
			CTA(p),
		),
		PageFooter(p),
	)
}
