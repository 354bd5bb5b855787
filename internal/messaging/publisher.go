package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/Gunvolt24/storefront/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

var _ ports.OrderObserver = (*KafkaPublisher)(nil)

// writer — минимальный контракт над kafka.Writer.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Handoff — сообщение для сервиса, который доставляет ссылку покупателю.
type Handoff struct {
	OrderID    string    `json:"order_id"`
	Client     string    `json:"client"`
	OrderURL   string    `json:"order_url"`
	HandoffURL string    `json:"handoff_url"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}

// KafkaPublisher — публикует deep link оформленного заказа в Kafka.
type KafkaPublisher struct {
	w         writer
	links     *LinkBuilder
	topic     string
	log       ports.Logger
	now       func() time.Time
	closeOnce sync.Once
}

// NewKafkaPublisher — ключ сообщения = ID заказа, балансировка по хэшу ключа.
func NewKafkaPublisher(brokers []string, topic string, links *LinkBuilder, log ports.Logger) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
	return newKafkaPublisher(w, topic, links, log)
}

func newKafkaPublisher(w writer, topic string, links *LinkBuilder, log ports.Logger) *KafkaPublisher {
	return &KafkaPublisher{w: w, links: links, topic: topic, log: log, now: time.Now}
}

// Build — сообщение о передаче заказа без отправки.
func (p *KafkaPublisher) Build(order *domain.Order) Handoff {
	return Handoff{
		OrderID:    order.ID,
		Client:     order.Client,
		OrderURL:   p.links.OrderURL(order.ID),
		HandoffURL: p.links.DeepLink(order),
		Text:       p.links.Text(order),
		CreatedAt:  p.now().UTC(),
	}
}

// OrderPlaced — реализация ports.OrderObserver.
func (p *KafkaPublisher) OrderPlaced(ctx context.Context, order *domain.Order) error {
	value, err := json.Marshal(p.Build(order))
	if err != nil {
		metrics.HandoffFailed.Inc()
		return fmt.Errorf("marshal handoff: %w", err)
	}
	msg := kafka.Message{Key: []byte(order.ID), Value: value}
	if err := p.w.WriteMessages(ctx, msg); err != nil {
		metrics.HandoffFailed.Inc()
		return fmt.Errorf("publish handoff order=%s topic=%s: %w", order.ID, p.topic, err)
	}
	metrics.HandoffPublished.Inc()
	p.log.Infof(ctx, "handoff published order=%s topic=%s", order.ID, p.topic)
	return nil
}

func (p *KafkaPublisher) Close() (retErr error) {
	p.closeOnce.Do(func() {
		retErr = p.w.Close()
	})
	return retErr
}
