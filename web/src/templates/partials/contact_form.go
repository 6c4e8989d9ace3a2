package partials

import (
	"github.com/nfrund/salon/internal/routes"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// ContactFormID is the swap target for contact form submissions.
const ContactFormID = "contact-form"

// ContactForm is the state of the contact form: echoed values, per-field
// errors and an optional confirmation after a successful send.
type ContactForm struct {
	Name    string
	Email   string
	Phone   string
	Message string

	Errors map[string]string
	Sent   bool
}

// FieldError returns the error for field, if any.
func (f ContactForm) FieldError(field string) string {
	return f.Errors[field]
}

// ContactFormView renders the form. It posts normally without JavaScript and
// swaps itself in place with HTMX.
func ContactFormView(f ContactForm) g.Node {
	return h.Div(
		h.ID(ContactFormID),
		h.Class("md:w-1/2"),
		g.If(f.Sent, h.P(
			g.Attr("role", "status"),
			h.Class("mb-4 rounded-md bg-green-50 p-4 text-green-800"),
			g.Text("Thanks for reaching out! We'll get back to you soon."),
		)),
		g.El("form",
			h.Class("space-y-4"),
			h.Method("post"),
			h.Action(routes.Contact),
			hx.Post(routes.Contact),
			hx.Target("#"+ContactFormID),
			hx.Swap("outerHTML"),
			field(f, "name", "text", "Your Name", f.Name),
			field(f, "email", "email", "Your Email", f.Email),
			field(f, "phone", "tel", "Your Phone", f.Phone),
			h.Div(
				h.Textarea(
					h.Name("message"),
					h.Placeholder("Your Message"),
					h.Rows("4"),
					h.Class(inputClass(f.FieldError("message") != "")),
					g.Text(f.Message),
				),
				fieldError(f.FieldError("message")),
			),
			h.Button(
				h.Type("submit"),
				h.Class("w-full rounded-md bg-gray-900 px-4 py-2 text-white transition-transform hover:scale-105 active:scale-95"),
				g.Text("Send Message"),
			),
		),
	)
}

func field(f ContactForm, name, typ, placeholder, value string) g.Node {
	msg := f.FieldError(name)
	return h.Div(
		h.Input(
			h.Type(typ),
			h.Name(name),
			h.Placeholder(placeholder),
			h.Value(value),
			h.Class(inputClass(msg != "")),
		),
		fieldError(msg),
	)
}

func fieldError(msg string) g.Node {
	if msg == "" {
		return nil
	}
	return h.P(h.Class("mt-1 text-sm text-red-600"), g.Text(msg))
}

func inputClass(invalid bool) string {
	base := "w-full rounded-md border px-3 py-2"
	if invalid {
		return base + " border-red-500"
	}
	return base + " border-gray-300"
}
