package main

import (
	"flag"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/interviewdost/backend/internal/api"
	"github.com/interviewdost/backend/internal/cache"
	"github.com/interviewdost/backend/internal/notify"
	"github.com/interviewdost/backend/internal/pubsub"
	"github.com/interviewdost/backend/internal/repo"
	"github.com/interviewdost/backend/internal/seed"
	"github.com/interviewdost/backend/pkg/environment"
	"github.com/interviewdost/backend/pkg/errors"
)

type Config struct {
	Environment environment.Env       `yaml:"Environment"`
	API         api.Config            `yaml:"API"`
	Mongo       repo.MongoConfig      `yaml:"Mongo"`
	Mail        notify.MailConfig     `yaml:"Mail"`
	Telegram    notify.TelegramConfig `yaml:"Telegram"`
	Redis       cache.Config          `yaml:"Redis"`
	Kafka       pubsub.Config         `yaml:"Kafka"`
	Seed        seed.Config           `yaml:"Seed"`
}

type flags struct {
	config string
	env    string
}

func parseFlags() flags {
	var f flags
	flag.StringVar(&f.config, "config", "config.yaml", "path to config file")
	flag.StringVar(&f.env, "env", "", "environment (dev, prod)")
	flag.Parse()
	return f
}

func loadConfig(f flags) (*Config, error) {
	path, err := filepath.Abs(f.config)
	if err != nil {
		return nil, errors.WrapFail(err, "build path to config")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapFailf(err, "read %q", f.config)
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, errors.WrapFail(err, "parse yaml")
	}

	if f.env != "" {
		cfg.Environment = environment.FromString(f.env)
	}

	// .env is optional, real environment wins over it
	err = godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.WrapFail(err, "load .env")
	}

	err = cfg.applyEnv(os.LookupEnv)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if port, ok := lookup("PORT"); ok && port != "" {
		c.API.HTTP.Addr = ":" + strings.TrimPrefix(port, ":")
	}

	if url, ok := lookup("MONGO_URL"); ok && url != "" {
		c.Mongo.URL = url
	}

	if user, ok := lookup("GMAIL_USER"); ok && user != "" {
		c.Mail.Username = user
	}

	if password, ok := lookup("GMAIL_PASSWORD"); ok && password != "" {
		c.Mail.Password = password
	}

	if addr, ok := lookup("REDIS_ADDR"); ok && addr != "" {
		c.Redis.Addr = addr
	}

	if brokers, ok := lookup("KAFKA_BROKERS"); ok && brokers != "" {
		c.Kafka.Brokers = c.Kafka.Brokers[:0]
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				c.Kafka.Brokers = append(c.Kafka.Brokers, b)
			}
		}
	}

	if token, ok := lookup("TELEGRAM_TOKEN"); ok && token != "" {
		c.Telegram.Token = token
	}

	if chat, ok := lookup("TELEGRAM_CHAT_ID"); ok && chat != "" {
		id, err := strconv.ParseInt(chat, 10, 64)
		if err != nil {
			return errors.WrapFail(err, "parse TELEGRAM_CHAT_ID")
		}
		c.Telegram.ChatID = id
	}

	if c.Environment == environment.Unknown {
		if env, ok := lookup("APP_ENV"); ok {
			c.Environment = environment.FromString(env)
		}
	}

	return nil
}
