// Package telegram delivers plain text messages through the Telegram Bot API.
package telegram

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	tele "gopkg.in/telebot.v4"

	logx "hwbot/pkg/logx"
)

const telegramTextLimit = 4000

type Config struct {
	Token   string
	Timeout time.Duration
	// APIURL overrides the Bot API base URL (tests, local Bot API servers).
	APIURL string
}

// Sender sends text messages to a chat. It does not poll for updates.
type Sender struct {
	bot   *tele.Bot
	token string
	log   logx.Logger
}

func New(cfg Config, log logx.Logger) (*Sender, error) {
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, errors.New("telegram token is empty")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	b, err := tele.NewBot(tele.Settings{
		URL:     cfg.APIURL,
		Token:   cfg.Token,
		Client:  &http.Client{Timeout: timeout},
		// No getMe handshake on construction; errors surface per send.
		Offline: true,
	})
	if err != nil {
		return nil, err
	}
	if log.IsZero() {
		log = logx.Nop()
	}
	return &Sender{bot: b, token: cfg.Token, log: log}, nil
}

// SetLogger swaps the logger used for send diagnostics.
func (s *Sender) SetLogger(log logx.Logger) {
	if log.IsZero() {
		log = logx.Nop()
	}
	s.log = log
}

// chat addresses a chat by its raw id: a numeric id or an "@channel" username.
type chat string

func (c chat) Recipient() string { return string(c) }

// SendText sends text to chatID, splitting it into several messages when it
// exceeds the Telegram limit. ctx is checked between chunks only; a single
// request is bounded by Config.Timeout. Returned errors never carry the token.
func (s *Sender) SendText(ctx context.Context, chatID, text string) error {
	to := strings.TrimSpace(chatID)
	if to == "" {
		return errors.New("telegram chat id is empty")
	}

	for _, chunk := range splitTelegramText(text, telegramTextLimit) {
		if ctx != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
		}
		if _, err := s.bot.Send(chat(to), chunk, &tele.SendOptions{DisableWebPagePreview: true}); err != nil {
			return s.redact(err)
		}
	}
	s.log.Debug("message sent", logx.String("chat_id", to), logx.Int("len", len(text)))
	return nil
}

// redact strips the bot token from err. Transport failures embed the request
// URL, which contains /bot<token>/.
func (s *Sender) redact(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		return fmt.Errorf("telegram %s: %w", strings.ToLower(ue.Op), ue.Err)
	}
	if s.token != "" && strings.Contains(err.Error(), s.token) {
		return errors.New(strings.ReplaceAll(err.Error(), s.token, "<token>"))
	}
	return err
}

// splitTelegramText splits long messages into chunks that are safe to send to
// Telegram, preferring newline boundaries.
func splitTelegramText(s string, limit int) []string {
	if limit <= 0 {
		limit = telegramTextLimit
	}
	rs := []rune(s)
	if len(rs) <= limit {
		return []string{s}
	}

	out := make([]string, 0, (len(rs)+limit-1)/limit)
	start := 0
	for start < len(rs) {
		end := start + limit
		if end > len(rs) {
			end = len(rs)
		}

		// Prefer splitting on a newline near the end of the window.
		if end < len(rs) {
			for i := end - 1; i > start; i-- {
				if rs[i] == '\n' && i-start >= limit/3 {
					end = i + 1
					break
				}
			}
		}

		out = append(out, strings.TrimRight(string(rs[start:end]), "\n"))

		start = end
		for start < len(rs) && rs[start] == '\n' {
			start++
		}
	}
	return out
}
