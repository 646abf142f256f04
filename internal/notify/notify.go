// Package notify sends notification text to the configured chat.
//
// A Notifier never returns an error and never panics outward: the poll loop
// reports its own failures through it, so a failing transport must not take
// the loop down. Delivery is reported as a bool so callers can decide whether
// a message counts as sent.
package notify

import (
	"context"
	"fmt"
	"strings"

	logx "hwbot/pkg/logx"
)

// Sender is the messaging transport.
type Sender interface {
	SendText(ctx context.Context, chatID, text string) error
}

type Notifier struct {
	sender Sender
	chatID string
	log    logx.Logger
}

// New returns a Notifier delivering to chatID. A send is bounded by the
// sender's own request timeout.
func New(sender Sender, chatID string, log logx.Logger) *Notifier {
	if log.IsZero() {
		log = logx.Nop()
	}
	return &Notifier{sender: sender, chatID: strings.TrimSpace(chatID), log: log}
}

// Send delivers text and reports whether the transport accepted it.
func (n *Notifier) Send(ctx context.Context, text string) (delivered bool) {
	defer func() {
		if r := recover(); r != nil {
			n.log.Error("crash when sending message to Telegram", logx.Any("panic", r))
			delivered = false
		}
	}()

	if n.sender == nil {
		n.log.Error("crash when sending message to Telegram", logx.String("err", "no sender configured"))
		return false
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := n.sender.SendText(ctx, n.chatID, text); err != nil {
		n.log.Error("crash when sending message to Telegram", logx.Err(fmt.Errorf("send to %s: %w", n.chatID, err)))
		return false
	}
	n.log.Debug("message sent", logx.String("text", text))
	return true
}
