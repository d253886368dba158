package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/numiflow/website/internal/locale"
)

// Plan is a pricing card. Its copy lives under pricing.<Key>.
type Plan struct {
	Key     string
	Popular bool
}

var Plans = []Plan{
	{Key: "starter"},
	{Key: "professional", Popular: true},
	{Key: "enterprise"},
}

// BillingHref links to the pricing section of loc's page with billing b. It
// is absolute so it also resolves from the page rendered after a contact post.
func BillingHref(loc locale.Locale, b Billing) string {
	return loc.Root() + "?billing=" + string(b) + "#pricing"
}

func billingToggle(p Page) g.Node {
	link := func(b Billing, labelKey string, extra g.Node) g.Node {
		class := "join-item btn btn-sm"
		if p.Billing == b {
			class += " btn-primary"
		} else {
			class += " btn-ghost"
		}
		return A(
			Href(BillingHref(p.Locale, b)),
			Class(class),
			g.If(p.Billing == b, g.Attr("aria-current", "true")),
			g.Text(p.T.Text(labelKey)),
			extra,
		)
	}

	return Div(
		Class("billing-toggle flex justify-center mt-8"),
		Div(
			Class("join"),
			link(BillingMonthly, "pricing.monthly", nil),
			link(BillingAnnual, "pricing.annually",
				Span(Class("badge badge-sm badge-success ms-1"), g.Text(p.T.Text("pricing.save"))),
			),
		),
	)
}

// PlanPrice is the price shown for a plan under the page's billing choice.
// Plans without a monthly price show their annual price either way.
func PlanPrice(p Page, plan Plan) string {
	price := p.T.Text("pricing." + plan.Key + ".price")
	if p.Billing == BillingMonthly {
		return p.T.TextOr("pricing."+plan.Key+".priceMonthly", price)
	}
	return price
}

func planCard(p Page, plan Plan) g.Node {
	key := "pricing." + plan.Key
	cardClass := "card border border-base-300 h-full"
	if plan.Popular {
		cardClass = "card border-2 border-primary shadow-primary/10 shadow-xl h-full"
	}

	return Div(
		Class("relative"),
		g.Attr("data-plan", plan.Key),
		g.If(plan.Popular,
			Span(
				Class("badge badge-primary absolute -top-3 start-1/2 -translate-x-1/2 z-1"),
				g.Text(p.T.Text("pricing.popular")),
			),
		),
		Div(
			Class(cardClass),
			Div(
				Class("card-body"),
				H3(Class("font-semibold text-xl"), g.Text(p.T.Text(key+".name"))),
				P(Class("text-sm text-base-content/70"), g.Text(p.T.Text(key+".description"))),
				P(
					Class("mt-4"),
					Span(Class("plan-price font-extrabold text-4xl"), g.Text(PlanPrice(p, plan))),
					Span(Class("text-base-content/60"), g.Text(p.T.Text(key+".period"))),
				),
				CheckList("mt-6 space-y-2 text-sm grow", p.T.List(key+".features")),
				A(
					Href("#contact"),
					Class(ctaClass(plan.Popular)),
					g.Text(p.T.Text(key+".cta")),
				),
			),
		),
	)
}

func ctaClass(popular bool) string {
	if popular {
		return "btn btn-primary mt-6"
	}
	return "btn btn-outline mt-6"
}

func Pricing(p Page) g.Node {
	return g.El("section",
		ID("pricing"),
		Class("pricing py-8 md:py-12 2xl:py-24 xl:py-16 container"),

		SectionHeader("pricing", "lucide--badge-euro", p.T.Text("pricing.title"), p.T.Text("pricing.subtitle")),
		billingToggle(p),

		Div(
			Class("gap-6 grid grid-cols-1 lg:grid-cols-3 mt-12 xl:mt-16 items-stretch"),
			g.Group(g.Map(Plans, func(plan Plan) g.Node {
				return planCard(p, plan)
			})),
		),
	)
}
