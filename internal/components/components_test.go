package components

import (
	"go/ast"
	"go/doc"
	"go/parser"
	"go/token"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/numiflow/website/internal/contact"
	"github.com/numiflow/website/internal/content"
	"github.com/numiflow/website/internal/locale"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func page(t *testing.T, loc locale.Locale) Page {
	t.Helper()
	cat, err := content.LoadEmbedded()
	require.NoError(t, err)
	return Page{
		Locale:   loc,
		T:        cat.Table(loc),
		SiteName: "NumiFlow",
		SiteURL:  "https://numiflow.example/",
		Form:     contact.Snapshot{ID: "form-1"},
	}
}

func TestLanding_Latvian(t *testing.T) {
	p := page(t, locale.Latvian)
	html := render(t, Landing(p))

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, `lang="lv"`)
	assert.Contains(t, html, `content="lv_LV"`)
	assert.Contains(t, html, `<link rel="canonical" href="https://numiflow.example/lv">`)
	assert.Contains(t, html, `hreflang="en" href="https://numiflow.example/en"`)
	assert.Contains(t, html, `hreflang="x-default" href="https://numiflow.example/en"`)
	assert.Contains(t, html, p.T.Text("hero.title"))
	assert.NotContains(t, html, "hero.title")
	for _, section := range []string{"features", "solutions", "pricing", "onboarding", "contact"} {
		assert.Contains(t, html, `id="`+section+`"`, section)
	}
}

func TestLanding_EveryKeyRenders(t *testing.T) {
	for _, loc := range locale.Supported() {
		t.Run(loc.String(), func(t *testing.T) {
			html := render(t, Landing(page(t, loc)))
			for _, key := range []string{"nav.features", "features.compliance.title", "solutions.auditors.title", "pricing.enterprise.cta", "onboarding.validation.title", "cta.button", "footer.terms"} {
				assert.NotContains(t, html, ">"+key+"<", key)
			}
		})
	}
}

func TestLanguageSwitcher_MarksActive(t *testing.T) {
	html := render(t, LanguageSwitcher(locale.Latvian))

	assert.Contains(t, html, `href="/en"`)
	assert.Contains(t, html, `href="/lv"`)
	assert.Contains(t, html, `aria-current="true">LV</a>`)
	assert.Equal(t, 1, strings.Count(html, "aria-current"))
}

func TestPlanPrice_Billing(t *testing.T) {
	p := page(t, locale.English)
	starter, enterprise := Plans[0], Plans[2]

	assert.Equal(t, "€49", PlanPrice(p, starter))
	p.Billing = BillingMonthly
	assert.Equal(t, "€59", PlanPrice(p, starter))
	assert.Equal(t, p.T.Text("pricing.enterprise.price"), PlanPrice(p, enterprise))
}

func TestPricing_BillingLinksAreRooted(t *testing.T) {
	p := page(t, locale.Latvian)
	html := render(t, Pricing(p))

	assert.Contains(t, html, `href="/lv?billing=monthly#pricing"`)
	assert.Contains(t, html, `href="/lv?billing=annual#pricing"`)
	assert.NotContains(t, html, `href="?billing=`)
	assert.Equal(t, "/en?billing=monthly#pricing", BillingHref(locale.English, BillingMonthly))
}

func TestParseBilling(t *testing.T) {
	assert.Equal(t, BillingMonthly, ParseBilling("monthly"))
	assert.Equal(t, BillingAnnual, ParseBilling("annual"))
	assert.Equal(t, BillingAnnual, ParseBilling("weekly"))
	assert.Equal(t, BillingAnnual, ParseBilling(""))
}

func TestPage_Paths(t *testing.T) {
	p := Page{Locale: locale.Latvian}
	assert.Equal(t, "/lv", p.Path())
	assert.Equal(t, "/lv/contact", p.ContactAction())

	p.Billing = BillingMonthly
	assert.Equal(t, "/lv?billing=monthly", p.Path())
}

func TestContactForm_KeepsValuesAndMarksInvalid(t *testing.T) {
	p := page(t, locale.English)
	p.Form.Data = contact.Data{Name: "Ann", Email: "not-an-email", Employees: "11-50", Message: "Hi <there>"}
	p.Invalid = map[contact.Field]string{contact.FieldEmail: "email", contact.FieldCompany: "required"}

	html := render(t, ContactForm(p))

	assert.Contains(t, html, `action="/en/contact"`)
	assert.Contains(t, html, `hx-post="/en/contact"`)
	assert.Contains(t, html, `name="form_id" value="form-1"`)
	assert.Contains(t, html, `value="Ann"`)
	assert.Contains(t, html, `<option value="11-50" selected>`)
	assert.Contains(t, html, "Hi &lt;there&gt;")
	assert.Contains(t, html, "input input-error")
	assert.Contains(t, html, p.T.Text("contact.form.invalid"))
	assert.NotContains(t, html, "disabled><span")
}

func TestContactForm_Statuses(t *testing.T) {
	p := page(t, locale.English)

	p.Form.Status = contact.StatusSuccess
	html := render(t, ContactForm(p))
	assert.Contains(t, html, "alert-success")
	assert.Contains(t, html, `data-status="success"`)

	p.Form.Status = contact.StatusError
	html = render(t, ContactForm(p))
	assert.Contains(t, html, "alert-error")

	p.Form.Status = contact.StatusIdle
	html = render(t, ContactForm(p))
	assert.NotContains(t, html, `class="alert`)
}

func TestContactForm_InFlightDisablesSubmit(t *testing.T) {
	p := page(t, locale.English)
	p.Form.InFlight = true

	html := render(t, ContactForm(p))

	assert.Contains(t, html, `aria-busy="true"`)
	assert.Contains(t, html, `<button type="submit" class="btn btn-primary w-full" disabled>`)
	assert.Contains(t, html, "label-sending shown")
}

func packageDocs(t *testing.T, dir, name string) *doc.Package {
	t.Helper()
	fset := token.NewFileSet()
	var files []*ast.File
	matches, err := filepath.Glob(filepath.Join(dir, "*.go"))
	require.NoError(t, err)
	for _, path := range matches {
		if strings.HasSuffix(path, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
		require.NoError(t, err)
		files = append(files, f)
	}
	pkg, err := doc.NewFromFiles(fset, files, "github.com/numiflow/website/internal/"+name)
	require.NoError(t, err)
	return pkg
}

func TestExportedAPI_Documented(t *testing.T) {
	components := packageDocs(t, ".", "components")
	funcs := map[string]string{}
	for _, f := range components.Funcs {
		funcs[f.Name] = f.Doc
	}
	types := map[string]*doc.Type{}
	for _, typ := range components.Types {
		types[typ.Name] = typ
		for _, f := range typ.Funcs {
			funcs[f.Name] = f.Doc
		}
	}
	for _, name := range []string{"ContactSection", "PageFooter", "Layout", "Landing", "BillingHref", "PlanPrice"} {
		assert.NotEmpty(t, funcs[name], name)
	}
	require.Contains(t, types, "PageConfig")
	assert.NotEmpty(t, types["PageConfig"].Doc)

	methods := map[string]string{}
	for _, typ := range packageDocs(t, "../contact", "contact").Types {
		if typ.Name != "Form" {
			continue
		}
		for _, m := range typ.Methods {
			methods[m.Name] = m.Doc
		}
	}
	for _, name := range []string{"ID", "SetField", "Submit"} {
		assert.NotEmpty(t, methods[name], "Form."+name)
	}
}
