package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/interviewdost/backend/internal/api"
	"github.com/interviewdost/backend/internal/cache"
	"github.com/interviewdost/backend/internal/content"
	"github.com/interviewdost/backend/internal/notify"
	"github.com/interviewdost/backend/internal/pubsub"
	"github.com/interviewdost/backend/internal/repo"
	"github.com/interviewdost/backend/internal/scheduler"
	"github.com/interviewdost/backend/internal/seed"
	"github.com/interviewdost/backend/pkg/errors"
	"github.com/interviewdost/backend/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := loadConfig(parseFlags())
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "load config"))
	}

	log, err := logger.New(cfg.Environment)
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "init logger"))
	}
	defer func() { _ = log.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db, err := repo.NewMongoClient(ctx, log, cfg.Mongo)
	if err != nil {
		log.Panic(errors.WrapFail(err, "init repo"))
	}

	err = seed.Run(ctx, log, db.Interviewers(), cfg.Seed, time.Now())
	if err != nil {
		log.Panic(errors.WrapFail(err, "seed interviewers"))
	}

	mailer := newSender(cfg, log)

	events := pubsub.Nop()
	if cfg.Kafka.Enabled() {
		events = pubsub.NewKafkaProducer(cfg.Kafka, log)
	}

	redis := cache.New(ctx, cfg.Redis, log)

	server := api.NewServer(cfg.API, log, api.Deps{
		Env:       cfg.Environment,
		Repo:      db,
		Scheduler: scheduler.New(log, db.Interviewers(), db.Interviews(), mailer, events),
		Content:   content.New(log, db.Tests(), redis),
		Mailer:    mailer,
	})

	err = server.Serve(ctx)
	if err != nil {
		log.Error(errors.WrapFail(err, "serve http"))
	}

	log.Infof("graceful shutdown...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	err = errors.Join(
		server.Shutdown(shutdownCtx),
		errors.WrapFail(events.Close(), "close event producer"),
		errors.WrapFail(redis.Close(), "close redis"),
	)
	if err != nil {
		log.Error(err)
	}

	log.Infof("shutdown complete")
}

// newSender sends confirmations by mail; Telegram, when configured, gets a copy.
func newSender(cfg *Config, log logger.Logger) notify.Sender {
	var primary notify.Sender = notify.Unconfigured{}
	if cfg.Mail.Enabled() {
		mailer, err := notify.NewMailer(cfg.Mail, log)
		if err != nil {
			log.Panic(errors.WrapFail(err, "init mailer"))
		}
		primary = mailer
	} else {
		log.Warnf("mail credentials are not set, emails will not be sent")
	}

	if !cfg.Telegram.Enabled() {
		return primary
	}

	bot, err := notify.NewTelegram(cfg.Telegram)
	if err != nil {
		log.Warn(errors.WrapFail(err, "init telegram copies"))
		return primary
	}

	return notify.NewFanout(log, primary, bot)
}
