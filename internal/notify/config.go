package notify

import (
	"time"

	"github.com/wneessen/go-mail"
)

type MailConfig struct {
	Host     string        `yaml:"host"`
	Port     int           `yaml:"port"`
	Username string        `yaml:"username"`
	Password string        `yaml:"password"`
	FromName string        `yaml:"fromName"`
	Timeout  time.Duration `yaml:"timeout"`
	// SSL forces implicit TLS on a port other than 465.
	SSL bool `yaml:"ssl"`
}

func (c MailConfig) implicitTLS(port int) bool {
	return c.SSL || port == mail.DefaultPortSSL
}

func (c MailConfig) Enabled() bool {
	return c.Username != "" && c.Password != ""
}

type TelegramConfig struct {
	Token  string `yaml:"token"`
	ChatID int64  `yaml:"chatID"`
	// URL overrides the Bot API endpoint.
	URL string `yaml:"url"`
}

func (c TelegramConfig) Enabled() bool {
	return c.Token != "" && c.ChatID != 0
}
