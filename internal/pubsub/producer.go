package pubsub

import (
	"cmp"
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/interviewdost/backend/pkg/errors"
	"github.com/interviewdost/backend/pkg/logger"
)

func NewKafkaProducer(cfg Config, log logger.Logger) Publisher {
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cmp.Or(cfg.Topic, "interviews"),
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		WriteTimeout: cmp.Or(cfg.WriteTimeout, 5*time.Second),
	}

	return &kafkaProducer{
		writer: w,
		log:    log.With("kafka_producer"),
	}
}

type kafkaProducer struct {
	writer *kafka.Writer
	log    logger.Logger
}

func (p *kafkaProducer) Publish(ctx context.Context, e Event) error {
	msg, err := encode(e)
	if err != nil {
		return err
	}

	err = p.writer.WriteMessages(ctx, msg)
	if err != nil {
		return errors.WrapFailf(err, "write %s event", e.Type)
	}

	p.log.Debugf("published %s for %s", e.Type, e.Key())
	return nil
}

func (p *kafkaProducer) Close() error {
	return errors.WrapFail(p.writer.Close(), "close kafka writer")
}

func encode(e Event) (kafka.Message, error) {
	value, err := json.Marshal(e)
	if err != nil {
		return kafka.Message{}, errors.WrapFail(err, "marshal event to json")
	}

	return kafka.Message{
		Key:   []byte(e.Key()),
		Value: value,
		Time:  e.At,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(e.Type)},
		},
	}, nil
}
