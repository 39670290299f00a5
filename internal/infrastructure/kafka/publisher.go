package kafka

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/swiftment/payment-service/internal/domain"
)

type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewDefaultKafkaPublisher(brokers []string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (k *KafkaPublisher) Publish(topic string, msgs ...domain.Message) error {
	kafkaMsgs := make([]kafka.Message, len(msgs))
	for i, msg := range msgs {
		kafkaMsgs[i] = kafka.Message{
			Topic: topic,
			Key:   msg.Key,
			Value: msg.Value,
			Time:  time.Now(),
		}
	}

	return k.writer.WriteMessages(context.Background(), kafkaMsgs...)
}

func (k *KafkaPublisher) Close() error {
	return k.writer.Close()
}
