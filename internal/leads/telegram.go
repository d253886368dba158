package leads

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/numiflow/website/internal/config"
	"github.com/numiflow/website/internal/contact"
	"github.com/numiflow/website/pkg/logger"
)

// TelegramSubmitter posts every lead to a Telegram chat through the Bot API.
type TelegramSubmitter struct {
	botToken string
	chatID   string
	baseURL  string
	client   *http.Client
	log      *slog.Logger
}

// NewTelegramSubmitter returns nil when the bot is not configured.
func NewTelegramSubmitter(cfg *config.Config, log *slog.Logger) *TelegramSubmitter {
	tc := cfg.Telegram
	if !tc.IsConfigured() {
		return nil
	}
	return &TelegramSubmitter{
		botToken: tc.BotToken,
		chatID:   tc.ChatID,
		baseURL:  strings.TrimRight(tc.APIBaseURL, "/"),
		client:   &http.Client{Timeout: tc.Timeout},
		log:      log.With(logger.Scope("leads.telegram")),
	}
}

type telegramMessage struct {
	ChatID                string `json:"chat_id"`
	Text                  string `json:"text"`
	ParseMode             string `json:"parse_mode,omitempty"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview,omitempty"`
}

type telegramResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// Submit sends the lead as an HTML-formatted message.
func (s *TelegramSubmitter) Submit(ctx context.Context, sub contact.Submission) error {
	payload := telegramMessage{
		ChatID:                s.chatID,
		Text:                  formatTelegram(sub),
		ParseMode:             "HTML",
		DisableWebPagePreview: true,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal telegram message: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", s.baseURL, s.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var tr telegramResponse
	_ = json.Unmarshal(body, &tr)

	if resp.StatusCode != http.StatusOK || !tr.OK {
		s.log.Error("telegram API rejected lead",
			slog.String("form_id", sub.FormID),
			slog.Int("status", resp.StatusCode),
			slog.String("description", tr.Description))
		return fmt.Errorf("telegram API returned status %d: %s", resp.StatusCode, tr.Description)
	}

	s.log.Info("lead sent to telegram", slog.String("form_id", sub.FormID))
	return nil
}

func formatTelegram(sub contact.Submission) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🆕 <b>%s</b>\n\n", html.EscapeString(Subject(sub)))
	fmt.Fprintf(&b, "<b>Name:</b> %s\n", html.EscapeString(sub.Name))
	fmt.Fprintf(&b, "<b>Email:</b> %s\n", html.EscapeString(sub.Email))
	fmt.Fprintf(&b, "<b>Company:</b> %s\n", html.EscapeString(sub.Company))
	fmt.Fprintf(&b, "<b>Employees:</b> %s\n", html.EscapeString(sub.Employees))
	fmt.Fprintf(&b, "<b>Language:</b> %s\n", strings.ToUpper(sub.Locale.String()))
	fmt.Fprintf(&b, "<b>Message:</b>\n%s", html.EscapeString(sub.Message))
	return b.String()
}
