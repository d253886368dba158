package leads

import (
	"embed"
	"fmt"
	"strings"
	"time"

	"github.com/aymerick/raymond"

	"github.com/numiflow/website/internal/contact"
)

//go:embed templates/*.hbs
var templateFS embed.FS

// Rendered is the lead notification in both formats.
type Rendered struct {
	Subject string
	HTML    string
	Text    string
}

// Templates renders lead notifications from the embedded Handlebars files.
type Templates struct {
	siteName string
	html     *raymond.Template
	text     *raymond.Template
}

// NewTemplates parses the embedded templates.
func NewTemplates(siteName string) (*Templates, error) {
	html, err := parseTemplate("lead.html.hbs")
	if err != nil {
		return nil, err
	}
	text, err := parseTemplate("lead.txt.hbs")
	if err != nil {
		return nil, err
	}
	return &Templates{siteName: siteName, html: html, text: text}, nil
}

func parseTemplate(name string) (*raymond.Template, error) {
	content, err := templateFS.ReadFile("templates/" + name)
	if err != nil {
		return nil, fmt.Errorf("template not found: %s", name)
	}
	tmpl, err := raymond.Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	return tmpl, nil
}

// Render fills both templates with the submission.
func (t *Templates) Render(s contact.Submission) (*Rendered, error) {
	ctx := templateContext(t.siteName, s)

	html, err := t.html.Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to render template lead.html: %w", err)
	}
	text, err := t.text.Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to render template lead.txt: %w", err)
	}

	return &Rendered{
		Subject: Subject(s),
		HTML:    html,
		Text:    text,
	}, nil
}

// Subject is the one-line summary used by every sink.
func Subject(s contact.Submission) string {
	company := strings.TrimSpace(s.Company)
	if company == "" {
		company = strings.TrimSpace(s.Name)
	}
	return fmt.Sprintf("New lead: %s (%s employees)", company, s.Employees)
}

func templateContext(siteName string, s contact.Submission) map[string]any {
	submitted := s.SubmittedAt
	if submitted.IsZero() {
		submitted = time.Now()
	}
	return map[string]any{
		"siteName":    siteName,
		"localeLabel": strings.ToUpper(s.Locale.String()),
		"name":        s.Name,
		"email":       s.Email,
		"company":     s.Company,
		"employees":   s.Employees,
		"message":     s.Message,
		"formId":      s.FormID,
		"remoteAddr":  s.RemoteAddr,
		"referrer":    s.Referrer,
		"submittedAt": submitted.UTC().Format(time.RFC1123),
	}
}
