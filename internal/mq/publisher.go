package mq

import (
	"encoding/json"
	"fmt"

	"cert_keep/internal/metrics"

	"github.com/rabbitmq/amqp091-go"
)

const (
	ExchangeName = "events"
)

// Publisher は通知イベントの発行口。エンジン自身は通知を送らず、
// ルーティングキー付きのイベントを発行するだけに留める
type Publisher interface {
	Publish(routingKey string, payload any) error
	Close()
}

// AmqpPublisher は RabbitMQ の topic exchange へイベントを発行します
type AmqpPublisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

func NewAmqpPublisher(url string) (*AmqpPublisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	// topic exchange はルーティングキーのパターンマッチが使える
	err = ch.ExchangeDeclare(
		ExchangeName,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	return &AmqpPublisher{
		conn:    conn,
		channel: ch,
	}, nil
}

func (p *AmqpPublisher) Close() {
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}

// Publish はイベントを発行します。
// routingKey: 例 "review.submitted", "deadline.approaching"
func (p *AmqpPublisher) Publish(routingKey string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	err = p.channel.Publish(
		ExchangeName,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp091.Persistent,
		},
	)
	if err != nil {
		return err
	}

	metrics.EventsPublished.WithLabelValues(routingKey).Inc()
	return nil
}

// NopPublisher は MQ 無効時のダミー実装です
type NopPublisher struct{}

func NewNopPublisher() *NopPublisher { return &NopPublisher{} }

func (p *NopPublisher) Publish(routingKey string, payload any) error { return nil }

func (p *NopPublisher) Close() {}
