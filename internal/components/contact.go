package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/numiflow/website/internal/contact"
)

// ContactFormID is the DOM id of the form element htmx swaps.
const ContactFormID = "contact-form"

// ContactSection is the #contact block: benefit list beside the lead form.
func ContactSection(p Page) g.Node {
	return g.El("section",
		ID("contact"),
		Class("contact py-8 md:py-12 2xl:py-24 xl:py-16 container"),

		SectionHeader("contact", "lucide--mail", p.T.Text("contact.title"), p.T.Text("contact.subtitle")),

		Div(
			Class("gap-8 grid grid-cols-1 lg:grid-cols-5 mt-12 xl:mt-16"),
			Div(
				Class("lg:col-span-2"),
				H3(Class("font-semibold text-xl"), g.Text(p.T.Text("contact.info.title"))),
				P(Class("mt-2 text-base-content/70"), g.Text(p.T.Text("contact.info.subtitle"))),
				CheckList("contact-benefits mt-6 space-y-3", p.T.List("contact.info.benefits")),
			),
			Div(
				Class("lg:col-span-3 card border border-base-300"),
				Div(Class("card-body"), ContactForm(p)),
			),
		),
	)
}

// ContactForm renders the form with the snapshot's values and status. It is
// also the fragment returned to htmx after a submit.
func ContactForm(p Page) g.Node {
	snap := p.Form
	return g.El("form",
		ID(ContactFormID),
		Class("contact-form space-y-4"),
		g.Attr("method", "post"),
		g.Attr("action", p.ContactAction()),
		g.Attr("hx-post", p.ContactAction()),
		g.Attr("hx-target", "this"),
		g.Attr("hx-swap", "outerHTML"),
		g.Attr("hx-disabled-elt", "find button[type=submit]"),
		g.Attr("data-status", snap.Status.String()),
		g.If(snap.InFlight, g.Attr("aria-busy", "true")),

		statusAlert(p),

		Input(Type("hidden"), Name("form_id"), Value(snap.ID)),

		Div(
			Class("gap-4 grid grid-cols-1 md:grid-cols-2"),
			textField(p, contact.FieldName, "text", "name"),
			textField(p, contact.FieldEmail, "email", "email"),
			textField(p, contact.FieldCompany, "text", "organization"),
			employeesField(p),
		),
		messageField(p),

		Button(
			Type("submit"),
			Class("btn btn-primary w-full"),
			g.If(snap.InFlight, Disabled()),
			Span(
				Class(labelClass("label-idle", !snap.InFlight)),
				g.Text(p.T.Text("contact.form.submit")),
			),
			Span(
				Class(labelClass("label-sending", snap.InFlight)),
				Span(Class("loading loading-spinner loading-sm")),
				g.Text(p.T.Text("contact.form.sending")),
			),
		),
	)
}

// labelClass marks which button label is showing. CSS swaps them while htmx
// has a request out; the server-side flag covers a render mid-flight.
func labelClass(base string, shown bool) string {
	if shown {
		return base + " shown"
	}
	return base
}

func statusAlert(p Page) g.Node {
	switch {
	case len(p.Invalid) > 0:
		return Div(Class("alert alert-warning"), g.Attr("role", "alert"), g.Text(p.T.Text("contact.form.invalid")))
	case p.Form.Status == contact.StatusSuccess:
		return Div(Class("alert alert-success"), g.Attr("role", "status"), g.Text(p.T.Text("contact.form.success")))
	case p.Form.Status == contact.StatusError:
		return Div(Class("alert alert-error"), g.Attr("role", "alert"), g.Text(p.T.Text("contact.form.error")))
	}
	return nil
}

func inputID(f contact.Field) string { return "contact-" + string(f) }

func fieldClass(p Page, f contact.Field, base string) string {
	if _, bad := p.Invalid[f]; bad {
		return base + " " + base + "-error"
	}
	return base
}

func fieldLabel(p Page, f contact.Field) g.Node {
	return Label(
		g.Attr("for", inputID(f)),
		Class("label font-medium"),
		g.Text(p.T.Text("contact.form."+string(f))),
	)
}

func textField(p Page, f contact.Field, typ, autocomplete string) g.Node {
	return Div(
		Class("flex flex-col gap-1"),
		fieldLabel(p, f),
		Input(
			ID(inputID(f)),
			Type(typ),
			Name(string(f)),
			Value(p.Form.Data.Get(f)),
			Class(fieldClass(p, f, "input")+" w-full"),
			g.Attr("autocomplete", autocomplete),
			Required(),
		),
	)
}

func employeesField(p Page) g.Node {
	current := p.Form.Data.Employees
	return Div(
		Class("flex flex-col gap-1"),
		fieldLabel(p, contact.FieldEmployees),
		Select(
			ID(inputID(contact.FieldEmployees)),
			Name(string(contact.FieldEmployees)),
			Class(fieldClass(p, contact.FieldEmployees, "select")+" w-full"),
			Required(),
			Option(Value(""), g.If(current == "", Selected()), Disabled(), g.Text(p.T.Text("contact.form.employees"))),
			g.Group(g.Map(contact.EmployeeBuckets, func(bucket string) g.Node {
				return Option(
					Value(bucket),
					g.If(current == bucket, Selected()),
					g.Text(p.T.TextOr("contact.employeeOptions."+bucket, bucket)),
				)
			})),
		),
	)
}

func messageField(p Page) g.Node {
	return Div(
		Class("flex flex-col gap-1"),
		fieldLabel(p, contact.FieldMessage),
		Textarea(
			ID(inputID(contact.FieldMessage)),
			Name(string(contact.FieldMessage)),
			Class(fieldClass(p, contact.FieldMessage, "textarea")+" w-full"),
			g.Attr("rows", "5"),
			Required(),
			g.Text(p.Form.Data.Message),
		),
	)
}
