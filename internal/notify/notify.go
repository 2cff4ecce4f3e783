package notify

import (
	"context"
	"strings"

	"github.com/interviewdost/backend/pkg/errors"
)

var ErrNotConfigured = errors.Error("notification channel is not configured")

type Sender interface {
	// Send makes a single delivery attempt.
	Send(ctx context.Context, msg Message) error
}

type Message struct {
	Subject    string   `json:"subject"`
	HTML       string   `json:"html"`
	Text       string   `json:"text"`
	Recipients []string `json:"recipients"`
}

// Validate requires every content field and at least one non-blank recipient.
func (m Message) Validate() error {
	if m.Subject == "" || m.HTML == "" || m.Text == "" || m.Recipients == nil {
		return errors.Error("missing required fields")
	}

	for _, r := range m.Recipients {
		if strings.TrimSpace(r) != "" {
			return nil
		}
	}

	return errors.Error("no valid recipients provided")
}

// Unconfigured rejects every message; used when mail credentials are absent.
type Unconfigured struct{}

func (Unconfigured) Send(context.Context, Message) error {
	return ErrNotConfigured
}
