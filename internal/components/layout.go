package components

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/numiflow/website/internal/locale"
)

const htmxConfig = `{"responseHandling":[{"code":"204","swap":false},{"code":"[24]..","swap":true,"error":false},{"code":"...","swap":false,"error":true}]}`

// PageConfig is the per-page head metadata Layout renders.
type PageConfig struct {
	Title       string
	Description string
	Theme       string
	Locale      locale.Locale
	SiteURL     string
}

// Layout wraps content in the full HTML document, including the SEO and
// hreflang head tags for config.Locale.
func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Theme == "" {
		config.Theme = "numiflow"
	}
	if config.Locale == "" {
		config.Locale = locale.Default
	}
	siteURL := strings.TrimRight(config.SiteURL, "/")

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang(config.Locale.Tag().String()),
			g.Attr("data-theme", config.Theme),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				Meta(g.Attr("property", "og:locale"), Content(ogLocale(config.Locale))),
				Meta(g.Attr("property", "og:image"), Content(siteURL+"/static/images/og-image.svg")),

				Link(Rel("canonical"), Href(siteURL+config.Locale.Root())),
				g.Group(g.Map(locale.Supported(), func(l locale.Locale) g.Node {
					return Link(Rel("alternate"), g.Attr("hreflang", l.Tag().String()), Href(siteURL+l.Root()))
				})),
				Link(Rel("alternate"), g.Attr("hreflang", "x-default"), Href(siteURL+locale.Default.Root())),

				Link(Rel("icon"), Href("/static/images/favicon.svg"), Type("image/svg+xml")),
				Link(Rel("stylesheet"), Href("/static/styles.css")),

				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
				Script(Src("https://unpkg.com/htmx.org@2.0.4"), g.Attr("defer", "")),
				// 4xx contact responses carry the re-rendered form and must be swapped in.
				Meta(Name("htmx-config"), Content(htmxConfig)),
			),
			Body(
				Class("bg-base-100 text-base-content"),
				g.Group(content),

				Script(Type("module"), Src("/static/js/topbar-scroll.js")),
			),
		),
	})
}

func ogLocale(l locale.Locale) string {
	switch l {
	case locale.Latvian:
		return "lv_LV"
	default:
		return "en_US"
	}
}
