package components

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Logo(siteName string) g.Node {
	return Div(
		Class("flex items-center gap-2"),
		Span(
			Class("inline-flex items-center justify-center size-8 rounded-box bg-linear-to-tr from-primary to-secondary text-primary-content"),
			Span(Class("iconify size-4"), g.Attr("data-icon", "lucide:chart-no-axes-combined"), g.Attr("aria-hidden", "true")),
		),
		Span(
			Class("font-bold text-xl"),
			g.Text(siteName),
		),
	)
}

func convertIconName(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) == 0 {
		return ""
	}
	return strings.Replace(parts[0], "--", ":", 1)
}

func extractSizeClasses(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) > 1 {
		return strings.Join(parts[1:], " ")
	}
	return ""
}

// Icon renders an iconify span. iconClass is "set--name [extra classes]".
func Icon(iconClass, ariaLabel string) g.Node {
	iconName := convertIconName(iconClass)
	sizeClasses := extractSizeClasses(iconClass)
	classes := "iconify inline-block"
	if sizeClasses != "" {
		classes = fmt.Sprintf("iconify inline-block %s", sizeClasses)
	}

	if ariaLabel != "" {
		return Span(
			Class(classes),
			g.Attr("data-icon", iconName),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
		)
	}

	return Span(
		Class(classes),
		g.Attr("data-icon", iconName),
		g.Attr("aria-hidden", "true"),
	)
}

func IconBadge(icon, color string) g.Node {
	containerClass := fmt.Sprintf("inline-flex items-center justify-center shrink-0 select-none size-10 rounded-box bg-%s/10 border border-%s/20 transition-colors", color, color)
	sizeClass := fmt.Sprintf("text-%s size-5", color)

	return Span(
		Class(containerClass),
		Span(
			Class(fmt.Sprintf("iconify %s", sizeClass)),
			g.Attr("data-icon", convertIconName(icon)),
			g.Attr("aria-hidden", "true"),
		),
	)
}

// SectionHeader is the centered title block every landing section opens with.
func SectionHeader(anchor, icon, title, subtitle string) g.Node {
	return Div(
		Class("text-center"),
		IconBadge(icon, "primary"),
		H2(
			ID(anchor+"-title"),
			Class("mt-4 font-semibold text-2xl sm:text-3xl custom-fade-in"),
			g.Text(title),
		),
		g.If(subtitle != "",
			P(
				Class("inline-block mt-3 max-w-2xl max-sm:text-sm text-base-content/70"),
				g.Text(subtitle),
			),
		),
	)
}

// CheckList renders items with a check icon in front of each.
func CheckList(class string, items []string) g.Node {
	return Ul(
		Class(class),
		g.Group(g.Map(items, func(item string) g.Node {
			return Li(
				Class("flex items-start gap-2"),
				Span(Class("iconify size-5 shrink-0 text-success"), g.Attr("data-icon", "lucide:badge-check"), g.Attr("aria-hidden", "true")),
				Span(g.Text(item)),
			)
		})),
	)
}
