package publisher

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fixway/fixway-jobs-service/internal/domain"
	"github.com/segmentio/kafka-go"
)

type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (k *KafkaPublisher) Publish(topic string, msgs ...domain.Message) error {
	km := make([]kafka.Message, 0, len(msgs))
	for _, m := range msgs {
		km = append(km, kafka.Message{
			Key:   m.Key,
			Value: m.Value,
			Time:  time.Now(),
			Topic: topic,
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return k.writer.WriteMessages(ctx, km...)
}

func (k *KafkaPublisher) PublishJob(event JobEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return k.Publish(TopicJobEvents, domain.Message{Key: []byte(event.JobID), Value: v})
}

func (k *KafkaPublisher) PublishSettlement(event SettlementEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return k.Publish(TopicSettlementEvents, domain.Message{Key: []byte(event.JobID), Value: v})
}

func (k *KafkaPublisher) PublishDispute(event DisputeEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return k.Publish(TopicDisputeEvents, domain.Message{Key: []byte(event.JobID), Value: v})
}

func (k *KafkaPublisher) Close() error {
	return k.writer.Close()
}
