package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/gogetwell/website/internal/catalog"
)

func ContactForm(state ContactState, info catalog.ContactInfo, social []catalog.SocialLink) g.Node {
	return Section(
		ID("contact"),
		Class("py-20 px-4 bg-gray-50"),
		Div(
			Class("max-w-6xl mx-auto"),
			SectionHeading("CONTACT", "Get in Touch", "Have questions about our platform? Send us a message and our team will get back to you."),

			Div(
				Class("grid grid-cols-1 lg:grid-cols-3 gap-8"),

				Div(
					Class("lg:col-span-2 bg-white rounded-2xl shadow-lg p-8"),
					contactBanner(state.Status),
					Form(
						ID("contact-form"),
						Method("post"),
						Action("/contact#contact"),
						g.Attr("novalidate"),
						Class("space-y-6"),
						contactField("fullname", "Full Name", "text", "John Doe", state.Values.Fullname, state.Errors["fullname"]),
						contactField("email", "Email Address", "email", "john@example.com", state.Values.Email, state.Errors["email"]),
						contactMessage(state.Values.Message, state.Errors["message"]),
						Button(
							Type("submit"),
							Class("w-full md:w-auto inline-flex items-center justify-center gap-2 py-3 px-8 rounded-full bg-gradient-to-r from-blue-500 to-indigo-600 text-white font-medium"),
							g.Text("Send Message"),
							Icon("lucide--send size-4", ""),
						),
					),
				),

				contactInfoCard(info, social),
			),
		),
	)
}

func contactBanner(status ContactStatus) g.Node {
	var classes, icon, text string
	switch status {
	case ContactSent:
		classes, icon, text = "bg-green-50 border-green-200 text-green-800", "lucide--circle-check", "Thank you! Your message has been sent. We'll be in touch soon."
	case ContactFailed:
		classes, icon, text = "bg-red-50 border-red-200 text-red-800", "lucide--circle-alert", "Sorry, we couldn't send your message. Please try again later."
	case ContactRateLimited:
		classes, icon, text = "bg-amber-50 border-amber-200 text-amber-800", "lucide--clock", "You've sent several messages in a short time. Please wait a minute and try again."
	case ContactInvalid:
		classes, icon, text = "bg-red-50 border-red-200 text-red-800", "lucide--circle-alert", "Please correct the highlighted fields."
	default:
		return nil
	}

	return Div(
		ID("contact-status"),
		Class("mb-6 flex items-center gap-3 rounded-xl border p-4 "+classes),
		g.Attr("role", "status"),
		g.Attr("data-status", string(status)),
		Icon(icon+" size-5", ""),
		P(g.Text(text)),
	)
}

func inputClass(errMsg string) string {
	if errMsg != "" {
		return "w-full px-4 py-3 rounded-lg border border-red-400 focus:outline-none focus:ring-2 focus:ring-red-300"
	}
	return "w-full px-4 py-3 rounded-lg border border-gray-300 focus:outline-none focus:ring-2 focus:ring-blue-300"
}

func fieldError(name, errMsg string) g.Node {
	if errMsg == "" {
		return nil
	}
	return P(ID(name+"-error"), Class("mt-1 text-sm text-red-600"), g.Text(errMsg))
}

func contactField(name, label, typ, placeholder, value, errMsg string) g.Node {
	return Div(
		Label(For(name), Class("block text-sm font-medium text-gray-700 mb-2"), g.Text(label)),
		Input(
			ID(name),
			Name(name),
			Type(typ),
			Value(value),
			Placeholder(placeholder),
			Required(),
			Class(inputClass(errMsg)),
			g.If(errMsg != "", g.Attr("aria-invalid", "true")),
			g.If(errMsg != "", g.Attr("aria-describedby", name+"-error")),
		),
		fieldError(name, errMsg),
	)
}

func contactMessage(value, errMsg string) g.Node {
	return Div(
		Label(For("message"), Class("block text-sm font-medium text-gray-700 mb-2"), g.Text("Message")),
		Textarea(
			ID("message"),
			Name("message"),
			Rows("5"),
			Placeholder("How can we help you?"),
			Required(),
			Class(inputClass(errMsg)),
			g.If(errMsg != "", g.Attr("aria-invalid", "true")),
			g.If(errMsg != "", g.Attr("aria-describedby", "message-error")),
			g.Text(value),
		),
		fieldError("message", errMsg),
	)
}

func contactInfoCard(info catalog.ContactInfo, social []catalog.SocialLink) g.Node {
	row := func(icon, label, value, href string) g.Node {
		var v g.Node = P(Class("text-white/90"), g.Text(value))
		if href != "" {
			v = A(Href(href), Class("text-white/90 hover:text-white"), g.Text(value))
		}
		return Div(
			Class("flex items-start gap-4"),
			Div(Class("rounded-lg bg-white/10 p-3"), Icon(icon+" size-5", "")),
			Div(P(Class("text-sm text-white/60"), g.Text(label)), v),
		)
	}

	return Aside(
		Class("rounded-2xl p-8 text-white shadow-lg"),
		g.Attr("style", "background: linear-gradient(135deg, #111439 0%, #1e3a8a 100%)"),
		H3(Class("text-2xl font-semibold mb-6"), g.Text("Contact Information")),
		Div(
			Class("space-y-6"),
			row("lucide--phone", "Phone", info.Phone, "tel:"+stripSpaces(info.Phone)),
			row("lucide--mail", "Email", info.Email, "mailto:"+info.Email),
			row("lucide--map-pin", "Location", info.Location, ""),
		),
		Div(Class("mt-8 pt-6 border-t border-white/20"), SocialLinks(social)),
	)
}

func SocialLinks(social []catalog.SocialLink) g.Node {
	return Div(
		Class("flex gap-3"),
		g.Group(g.Map(social, func(s catalog.SocialLink) g.Node {
			return A(
				Href(s.URL),
				Target("_blank"),
				Rel("noopener noreferrer"),
				Class("w-10 h-10 rounded-full bg-white/10 hover:bg-white/20 flex items-center justify-center"),
				Icon(s.Icon+" size-5", s.Label),
			)
		})),
	)
}

func stripSpaces(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r != ' ' {
			out = append(out, r)
		}
	}
	return string(out)
}
