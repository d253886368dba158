package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Hero(p Page) g.Node {
	t := p.T
	return g.Group([]g.Node{
		g.El("section",
			Class("hero relative z-2 overflow-hidden"),
			ID("hero"),

			Div(Class("absolute inset-0 -z-1 opacity-20 grainy")),

			Div(
				Class("container flex items-center justify-center pt-28 md:pt-36 xl:pt-44 pb-20 md:pb-28 xl:pb-36"),
				Div(
					Class("w-100 text-center md:w-120 xl:w-160 2xl:w-200"),

					H1(
						Class("text-3xl leading-tight font-extrabold tracking-[-0.5px] transition-all duration-1000 md:text-4xl xl:text-5xl 2xl:text-6xl starting:scale-110 starting:blur-md"),
						g.Text(t.Text("hero.title")),
					),

					P(
						Class("mt-4 text-xl font-semibold"),
						Span(
							Class("animate-background-shift from-secondary via-accent to-primary bg-linear-to-r bg-[400%,400%] bg-clip-text text-transparent"),
							g.Text(t.Text("hero.subtitle")),
						),
					),

					P(
						Class("text-base-content/80 mt-5 xl:text-lg"),
						g.Text(t.Text("hero.description")),
					),

					Div(
						Class("hero-buttons mt-8 inline-flex justify-center gap-3 transition-all duration-1000 starting:scale-110"),
						A(
							Href("#contact"),
							Class("btn btn-primary shadow-primary/20 shadow-xl"),
							Icon("lucide--calendar-check size-4", ""),
							g.Text(t.Text("hero.cta")),
						),
						A(
							Href("#features"),
							Class("btn btn-ghost"),
							Icon("lucide--arrow-down size-4", ""),
							g.Text(t.Text("hero.learnMore")),
						),
					),
				),
			),
		),

		Div(Class("from-secondary via-accent to-primary mb-8 h-1 w-full bg-linear-to-r md:mb-12 xl:mb-16")),
	})
}
