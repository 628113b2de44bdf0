package components

import (
	"fmt"
	"net/url"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Logo() g.Node {
	return Div(
		Class("flex items-center gap-2"),
		IconBadge("lucide--heart-pulse", "sky"),
		Span(
			Class("font-bold text-xl"),
			g.Text("gogetwell"),
			Span(Class("text-sky-400"), g.Text(".ai")),
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
	containerClass := fmt.Sprintf("inline-flex items-center justify-center shrink-0 select-none size-8 rounded-lg bg-%s-500/10 border border-%s-500/20", color, color)

	return Span(
		Class(containerClass),
		Span(
			Class(fmt.Sprintf("iconify text-%s-500 size-4", color)),
			g.Attr("data-icon", convertIconName(icon)),
		),
	)
}

func SectionHeading(eyebrow, title, subtitle string) g.Node {
	return Div(
		Class("text-center mb-12 reveal"),
		g.If(eyebrow != "",
			Span(Class("px-4 py-1.5 bg-[#111439] text-white text-sm rounded-full"), g.Text(eyebrow)),
		),
		H2(Class("text-4xl md:text-5xl font-bold mt-6 mb-4 text-[#111439]"), g.Text(title)),
		g.If(subtitle != "",
			P(Class("text-lg text-gray-600 max-w-2xl mx-auto"), g.Text(subtitle)),
		),
	)
}

// pageURL builds a link back to the landing page that keeps the rest of the
// visitor's filter state.
func pageURL(state PageState, override url.Values, fragment string) string {
	q := url.Values{}
	if state.Query != "" {
		q.Set("q", state.Query)
	}
	if state.Category != "" && state.Category != "all" {
		q.Set("category", state.Category)
	}
	if state.Testimonial != 0 {
		q.Set("t", fmt.Sprint(state.Testimonial))
	}
	for k, v := range override {
		q.Del(k)
		if len(v) > 0 && v[0] != "" {
			q[k] = v
		}
	}
	if q.Get("category") == "all" {
		q.Del("category")
	}

	u := "/"
	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}
	if fragment != "" {
		u += "#" + fragment
	}
	return u
}
