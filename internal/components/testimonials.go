package components

import (
	"fmt"
	"net/url"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/gogetwell/website/internal/catalog"
)

// WrapIndex maps any slide index, negative included, onto 0..n-1.
func WrapIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

func Testimonials(state PageState, items []catalog.Testimonial) g.Node {
	if len(items) == 0 {
		return nil
	}

	current := WrapIndex(state.Testimonial, len(items))
	prev := WrapIndex(current-1, len(items))
	next := WrapIndex(current+1, len(items))

	slides := make([]g.Node, 0, len(items))
	for i, t := range items {
		slides = append(slides, testimonialSlide(t, i, i == current))
	}

	dots := make([]g.Node, 0, len(items))
	for i := range items {
		classes := "w-3 h-3 rounded-full bg-blue-200 transition-all"
		if i == current {
			classes = "w-8 h-3 rounded-full bg-blue-600 transition-all"
		}
		dots = append(dots, A(
			Href(pageURL(state, url.Values{"t": {strconv.Itoa(i)}}, "testimonials")),
			Class(classes),
			g.Attr("data-slide", strconv.Itoa(i)),
			g.Attr("aria-label", fmt.Sprintf("Go to testimonial %d", i+1)),
			g.If(i == current, g.Attr("aria-current", "true")),
		))
	}

	return Section(
		ID("testimonials"),
		Class("py-20 px-4 bg-gradient-to-b from-white to-blue-50"),
		g.Attr("data-carousel", ""),
		g.Attr("data-current", strconv.Itoa(current)),
		Div(
			Class("max-w-4xl mx-auto"),
			SectionHeading("", "What Our Clients Say", "Hear from healthcare providers who have transformed their business with our platform."),

			Div(
				Class("relative"),
				Div(Class("relative min-h-[18rem]"), g.Group(slides)),

				A(
					Href(pageURL(state, url.Values{"t": {strconv.Itoa(prev)}}, "testimonials")),
					Class("absolute left-0 top-1/2 -translate-y-1/2 -translate-x-4 md:-translate-x-12 w-10 h-10 rounded-full bg-white shadow-md flex items-center justify-center"),
					g.Attr("data-carousel-prev", ""),
					Icon("lucide--chevron-left size-5 text-blue-600", "Previous testimonial"),
				),
				A(
					Href(pageURL(state, url.Values{"t": {strconv.Itoa(next)}}, "testimonials")),
					Class("absolute right-0 top-1/2 -translate-y-1/2 translate-x-4 md:translate-x-12 w-10 h-10 rounded-full bg-white shadow-md flex items-center justify-center"),
					g.Attr("data-carousel-next", ""),
					Icon("lucide--chevron-right size-5 text-blue-600", "Next testimonial"),
				),
			),

			Div(Class("mt-8 flex justify-center gap-2"), g.Group(dots)),
		),
	)
}

func testimonialSlide(t catalog.Testimonial, index int, active bool) g.Node {
	classes := "absolute inset-0 transition-opacity duration-500 opacity-0 pointer-events-none"
	if active {
		classes = "relative transition-opacity duration-500 opacity-100"
	}

	return Figure(
		Class(classes),
		g.Attr("data-slide-index", strconv.Itoa(index)),
		g.If(!active, g.Attr("aria-hidden", "true")),
		Div(
			Class("bg-white rounded-2xl shadow-lg p-8 md:p-10"),
			Stars(t.Rating),
			BlockQuote(Class("mt-4 text-lg text-gray-700 italic"), g.Text("“"+t.Text+"”")),
			FigCaption(
				Class("mt-6 flex items-center gap-4"),
				Img(Src(t.Image), Alt(t.Name), Class("w-12 h-12 rounded-full object-cover"), g.Attr("loading", "lazy")),
				Div(
					P(Class("font-semibold text-gray-900"), g.Text(t.Name)),
					P(Class("text-sm text-gray-500"), g.Text(t.Role+", "+t.Company)),
				),
			),
		),
	)
}

// Stars renders a five-star rating with the first rating stars filled.
func Stars(rating int) g.Node {
	stars := make([]g.Node, 0, 5)
	for i := 1; i <= 5; i++ {
		classes := "lucide--star size-5 text-gray-300"
		if i <= rating {
			classes = "lucide--star size-5 text-yellow-400"
		}
		stars = append(stars, Icon(classes, ""))
	}
	return Div(
		Class("flex gap-1"),
		g.Attr("role", "img"),
		g.Attr("aria-label", fmt.Sprintf("Rated %d out of 5", rating)),
		g.Group(stars),
	)
}
