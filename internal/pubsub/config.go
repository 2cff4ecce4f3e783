package pubsub

import "time"

type Config struct {
	Brokers      []string      `yaml:"brokers"`
	Topic        string        `yaml:"topic"`
	WriteTimeout time.Duration `yaml:"writeTimeout"`
}

func (c Config) Enabled() bool {
	return len(c.Brokers) != 0
}
