package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func CTA(p Page) g.Node {
	return Div(
		Class("cta sm:px-16 container"),
		Div(
			Class("relative py-8 md:py-12 xl:py-16 2xl:pt-24 2xl:pb-32 sm:rounded-[60px] overflow-hidden"),

			Div(Class("max-sm:hidden -bottom-40 absolute bg-secondary blur-[180px] w-72 h-64 start-16")),
			Div(Class("max-sm:hidden -bottom-40 absolute bg-accent blur-[180px] w-72 h-64 -translate-x-1/2 start-1/2")),
			Div(Class("max-sm:hidden -bottom-40 absolute bg-primary blur-[180px] w-72 h-64 end-16")),
			Div(Class("max-sm:hidden z-0 absolute inset-0 opacity-20 grainy")),

			Div(
				Class("relative text-center"),
				Div(
					Class("inline-flex items-center bg-linear-to-tr from-secondary to-accent p-2.5 rounded-full text-primary-content"),
					Icon("lucide--sparkles size-5", ""),
				),
				P(Class("mt-4 font-bold text-xl sm:text-2xl lg:text-4xl"), g.Text(p.T.Text("cta.title"))),
				P(Class("inline-block mt-3 max-w-2xl max-sm:text-sm"), g.Text(p.T.Text("cta.description"))),

				Div(
					Class("flex justify-center mt-6 xl:mt-8"),
					A(
						Href("#contact"),
						Class("gap-3 bg-linear-to-r from-secondary to-accent border-0 text-primary-content text-base btn"),
						g.Text(p.T.Text("cta.button")),
						Icon("lucide--arrow-right size-4", ""),
					),
				),
			),
		),
	)
}
