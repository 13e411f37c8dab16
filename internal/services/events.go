package services

import (
	"context"
	"encoding/json"

	"github.com/sbilibin2017/gw-expense-tracker/internal/logger"
	"github.com/segmentio/kafka-go"
)

// publish sends event to topic. Publishing failures are logged and never
// fail the request.
func publish(ctx context.Context, w KafkaWriter, topic, key string, event any) {
	log := logger.FromContext(ctx)
	if w == nil {
		log.Warnw("Kafka writer not configured, skipping publishing", "topic", topic, "key", key)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Errorw("Failed to marshal event for Kafka", "topic", topic, "key", key, "error", err)
		return
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		log.Errorw("Failed to publish event to Kafka", "topic", topic, "key", key, "error", err)
		return
	}
	log.Infow("Event published to Kafka", "topic", topic, "key", key)
}
