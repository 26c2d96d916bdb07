package services

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"storefront/models"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
)

// OrderPlacedEvent is the message published after an order has been
// committed to the database.
type OrderPlacedEvent struct {
	EventID string        `json:"event_id"`
	Order   *models.Order `json:"order"`
}

// IEventPublisher defines the interface for publishing order events.
type IEventPublisher interface {
	PublishOrderPlaced(order *models.Order) error
}

// KafkaEventPublisher implements IEventPublisher using Sarama.
type KafkaEventPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewKafkaEventPublisher creates a new KafkaEventPublisher instance.
func NewKafkaEventPublisher(brokers []string, topic string) (IEventPublisher, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true // Required for SyncProducer
	config.Producer.Timeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to start Sarama producer: %w", err)
	}

	log.Println("Kafka producer connected successfully.")
	return &KafkaEventPublisher{producer: producer, topic: topic}, nil
}

// PublishOrderPlaced sends an order-placed event to the configured topic,
// keyed by the order id so events for one order stay in partition order.
func (p *KafkaEventPublisher) PublishOrderPlaced(order *models.Order) error {
	event := OrderPlacedEvent{
		EventID: uuid.NewString(),
		Order:   order,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(fmt.Sprintf("%d", order.ID)),
		Value: sarama.ByteEncoder(payload),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		log.Printf("Failed to send order event to topic '%s': %v", p.topic, err)
		return err
	}
	log.Printf("Order event sent to topic '%s', partition %d, offset %d", p.topic, partition, offset)
	return nil
}
