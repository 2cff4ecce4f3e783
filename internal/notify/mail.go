package notify

import (
	"cmp"
	"context"
	"sync"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/interviewdost/backend/pkg/errors"
	"github.com/interviewdost/backend/pkg/logger"
)

// Mailer sends through an authenticated SMTP relay (Gmail by default).
type Mailer struct {
	mu       sync.Mutex
	client   *mail.Client
	from     string
	fromName string
	log      logger.Logger
}

// NewMailer builds an SMTP client. Port 465 (or SSL set) means implicit
// TLS, any other port requires STARTTLS. Extra options are applied last.
func NewMailer(cfg MailConfig, log logger.Logger, extra ...mail.Option) (*Mailer, error) {
	port := cmp.Or(cfg.Port, mail.DefaultPortTLS)

	opts := []mail.Option{
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
		mail.WithTimeout(cmp.Or(cfg.Timeout, 15*time.Second)),
	}

	if cfg.implicitTLS(port) {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	}

	client, err := mail.NewClient(cmp.Or(cfg.Host, "smtp.gmail.com"), append(opts, extra...)...)
	if err != nil {
		return nil, errors.WrapFail(err, "create smtp client")
	}

	return &Mailer{
		client:   client,
		from:     cfg.Username,
		fromName: cmp.Or(cfg.FromName, "InterviewDost"),
		log:      log.With("mailer"),
	}, nil
}

func (m *Mailer) Send(ctx context.Context, msg Message) error {
	built, err := m.build(msg)
	if err != nil {
		return err
	}

	// go-mail client keeps connection state between dial and close
	m.mu.Lock()
	defer m.mu.Unlock()

	err = m.client.DialAndSendWithContext(ctx, built)
	if err != nil {
		return errors.WrapFail(err, "send mail")
	}

	m.log.Infof("mail %q sent to %d recipients", msg.Subject, len(msg.Recipients))
	return nil
}

func (m *Mailer) build(msg Message) (*mail.Msg, error) {
	err := msg.Validate()
	if err != nil {
		return nil, err
	}

	built := mail.NewMsg()

	err = built.FromFormat(m.fromName, m.from)
	if err != nil {
		return nil, errors.WrapFail(err, "set sender")
	}

	err = built.To(msg.Recipients...)
	if err != nil {
		return nil, errors.WrapFail(err, "set recipients")
	}

	built.Subject(msg.Subject)
	built.SetBodyString(mail.TypeTextPlain, msg.Text)
	built.AddAlternativeString(mail.TypeTextHTML, msg.HTML)

	return built, nil
}
