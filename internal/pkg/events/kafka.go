package events

import (
	"context"
	"fmt"

	"github.com/ManuelReschke/PixelShop/internal/pkg/env"
	fiberlog "github.com/gofiber/fiber/v2/log"
	"github.com/twmb/franz-go/pkg/kgo"
)

// KafkaPublisher produces events keyed by session id, so every event of one
// checkout lands on the same partition.
type KafkaPublisher struct {
	client *kgo.Client
	topic  string
}

func NewKafkaPublisher(brokers []string, topic string) (*KafkaPublisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("no kafka brokers configured")
	}
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.AllowAutoTopicCreation(),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}
	return &KafkaPublisher{client: client, topic: topic}, nil
}

// NewPublisherFromEnv returns a Kafka publisher when KAFKA_BROKERS is set and
// a NopPublisher otherwise.
func NewPublisherFromEnv() Publisher {
	brokers := env.GetList("KAFKA_BROKERS")
	if len(brokers) == 0 {
		return NopPublisher{}
	}
	p, err := NewKafkaPublisher(brokers, env.GetEnv("KAFKA_TOPIC", TopicOrderRecorded))
	if err != nil {
		fiberlog.Warnf("[Events] kafka disabled: %v", err)
		return NopPublisher{}
	}
	fiberlog.Infof("[Events] publishing %s to %v", TypeOrderRecorded, brokers)
	return p
}

func (p *KafkaPublisher) PublishOrderRecorded(ctx context.Context, ev OrderRecorded) error {
	key, value, err := encode(ev)
	if err != nil {
		return fmt.Errorf("encode %s: %w", ev.Type, err)
	}
	rec := &kgo.Record{Topic: p.topic, Key: key, Value: value}
	if err := p.client.ProduceSync(ctx, rec).FirstErr(); err != nil {
		return fmt.Errorf("produce %s: %w", ev.Type, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() {
	p.client.Close()
}
