package leads

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mailgun/mailgun-go/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numiflow/website/internal/config"
	"github.com/numiflow/website/internal/contact"
	"github.com/numiflow/website/internal/locale"
)

var lead = contact.Submission{
	Data: contact.Data{
		Name:      "Anna <script>",
		Email:     "anna@example.lv",
		Company:   "Acme & Co",
		Employees: "11-50",
		Message:   "We need help\nwith closing.",
	},
	Meta: contact.Meta{
		Locale:      locale.Latvian,
		FormID:      "6f1c1f4e-8b2a-4c39-9d6a-0a3f2b9f0c11",
		RemoteAddr:  "203.0.113.7",
		SubmittedAt: time.Date(2025, 5, 2, 9, 30, 0, 0, time.UTC),
	},
}

func TestTemplates_Render(t *testing.T) {
	tpl, err := NewTemplates("NumiFlow")
	require.NoError(t, err)

	out, err := tpl.Render(lead)
	require.NoError(t, err)

	assert.Equal(t, "New lead: Acme & Co (11-50 employees)", out.Subject)

	assert.Contains(t, out.HTML, "Anna &lt;script&gt;")
	assert.NotContains(t, out.HTML, "<script>")
	assert.Contains(t, out.HTML, "LV page")
	assert.Contains(t, out.HTML, "203.0.113.7")

	assert.Contains(t, out.Text, "Name:      Anna <script>")
	assert.Contains(t, out.Text, "Company:   Acme & Co")
	assert.Contains(t, out.Text, "We need help\nwith closing.")
	assert.NotContains(t, out.Text, "Referrer:")
}

func TestSubject_FallsBackToName(t *testing.T) {
	s := lead
	s.Company = "  "
	assert.Equal(t, "New lead: Anna <script> (11-50 employees)", Subject(s))
}

type fakeMailgun struct {
	real    *mailgun.MailgunImpl
	from    string
	subject string
	text    string
	to      []string
	sent    int
	err     error
}

func newFakeMailgun() *fakeMailgun {
	return &fakeMailgun{real: mailgun.NewMailgun("mg.example.com", "key-test")}
}

func (f *fakeMailgun) NewMessage(from, subject, text string, to ...string) *mailgun.Message {
	f.from, f.subject, f.text, f.to = from, subject, text, to
	return f.real.NewMessage(from, subject, text, to...)
}

func (f *fakeMailgun) Send(_ context.Context, _ *mailgun.Message) (string, string, error) {
	f.sent++
	if f.err != nil {
		return "", "", f.err
	}
	return "Queued. Thank you.", "<20250502.1@mg.example.com>", nil
}

func mailgunConfig() *config.Config {
	return &config.Config{
		SiteName: "NumiFlow",
		Email: config.EmailConfig{
			Enabled:       true,
			MailgunDomain: "mg.example.com",
			MailgunAPIKey: "key-test",
			FromEmail:     "website@numiflow.example",
			FromName:      "NumiFlow Website",
		},
		Contact: config.ContactConfig{LeadsTo: "sales@numiflow.example", LeadsToName: "Sales"},
	}
}

func TestMailgunSubmitter_Send(t *testing.T) {
	cfg := mailgunConfig()
	tpl, err := NewTemplates(cfg.SiteName)
	require.NoError(t, err)
	client := newFakeMailgun()

	s := newMailgunSubmitter(cfg, tpl, client, slog.Default())
	require.NoError(t, s.Submit(context.Background(), lead))

	assert.Equal(t, 1, client.sent)
	assert.Equal(t, "NumiFlow Website <website@numiflow.example>", client.from)
	assert.Equal(t, []string{"Sales <sales@numiflow.example>"}, client.to)
	assert.Equal(t, "New lead: Acme & Co (11-50 employees)", client.subject)
	assert.Contains(t, client.text, "anna@example.lv")
}

func TestMailgunSubmitter_SendError(t *testing.T) {
	cfg := mailgunConfig()
	tpl, err := NewTemplates(cfg.SiteName)
	require.NoError(t, err)
	client := newFakeMailgun()
	client.err = errors.New("401 unauthorized")

	s := newMailgunSubmitter(cfg, tpl, client, slog.Default())
	err = s.Submit(context.Background(), lead)

	assert.ErrorContains(t, err, "mailgun: 401 unauthorized")
}

func TestMailgunSubmitter_Validate(t *testing.T) {
	cfg := mailgunConfig()
	cfg.Email.FromName = ""
	tpl, err := NewTemplates(cfg.SiteName)
	require.NoError(t, err)
	client := newFakeMailgun()

	s := newMailgunSubmitter(cfg, tpl, client, slog.Default())
	err = s.Submit(context.Background(), lead)

	assert.ErrorContains(t, err, "EMAIL_FROM_NAME is required")
	assert.Equal(t, 0, client.sent)
}

func TestNewMailgunSubmitter_RequiresConfig(t *testing.T) {
	cfg := mailgunConfig()
	cfg.Contact.LeadsTo = ""
	assert.Nil(t, NewMailgunSubmitter(cfg, nil, slog.Default()))

	cfg = mailgunConfig()
	cfg.Email.Enabled = false
	assert.Nil(t, NewMailgunSubmitter(cfg, nil, slog.Default()))
}

func telegramConfig(baseURL string) *config.Config {
	return &config.Config{Telegram: config.TelegramConfig{
		BotToken:   "123:abc",
		ChatID:     "-1001",
		APIBaseURL: baseURL,
		Timeout:    time.Second,
	}}
}

func TestTelegramSubmitter_Submit(t *testing.T) {
	var got telegramMessage
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"ok":true,"result":{}}`))
	}))
	defer srv.Close()

	s := NewTelegramSubmitter(telegramConfig(srv.URL+"/"), slog.Default())
	require.NotNil(t, s)
	require.NoError(t, s.Submit(context.Background(), lead))

	assert.Equal(t, "/bot123:abc/sendMessage", path)
	assert.Equal(t, "-1001", got.ChatID)
	assert.Equal(t, "HTML", got.ParseMode)
	assert.Contains(t, got.Text, "<b>Name:</b> Anna &lt;script&gt;")
	assert.Contains(t, got.Text, "Acme &amp; Co")
	assert.Contains(t, got.Text, "<b>Language:</b> LV")
}

func TestTelegramSubmitter_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"ok":false,"description":"Bad Request: chat not found"}`))
	}))
	defer srv.Close()

	s := NewTelegramSubmitter(telegramConfig(srv.URL), slog.Default())
	err := s.Submit(context.Background(), lead)

	assert.ErrorContains(t, err, "status 400: Bad Request: chat not found")
}

func TestTelegramSubmitter_HonorsContext(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	s := NewTelegramSubmitter(telegramConfig(srv.URL), slog.Default())
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := s.Submit(ctx, lead)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestNewTelegramSubmitter_NotConfigured(t *testing.T) {
	assert.Nil(t, NewTelegramSubmitter(&config.Config{}, slog.Default()))
}

func TestFanout(t *testing.T) {
	ok := contact.SubmitterFunc(func(context.Context, contact.Submission) error { return nil })
	boom := errors.New("boom")
	failing := contact.SubmitterFunc(func(context.Context, contact.Submission) error { return boom })

	assert.NoError(t, Fanout{ok}.Submit(context.Background(), lead))
	assert.ErrorIs(t, Fanout{ok, failing}.Submit(context.Background(), lead), boom)
	assert.NoError(t, Fanout{}.Submit(context.Background(), lead))
}

func TestNewSubmitter_Selection(t *testing.T) {
	sub, err := NewSubmitter(&config.Config{Contact: config.ContactConfig{SimulatedDelay: time.Second}}, slog.Default())
	require.NoError(t, err)
	sim, ok := sub.(*contact.SimulatedSubmitter)
	require.True(t, ok)
	assert.Equal(t, time.Second, sim.Delay)

	cfg := telegramConfig("https://api.telegram.org")
	sub, err = NewSubmitter(cfg, slog.Default())
	require.NoError(t, err)
	assert.IsType(t, &TelegramSubmitter{}, sub)

	both := mailgunConfig()
	both.Telegram = cfg.Telegram
	sub, err = NewSubmitter(both, slog.Default())
	require.NoError(t, err)
	fan, ok := sub.(Fanout)
	require.True(t, ok)
	assert.Len(t, fan, 2)
}
