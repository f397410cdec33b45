// Package events publishes gadget lifecycle notifications to a durable
// RabbitMQ queue. Publishing is fire-and-forget from the request path:
// callers log failures and carry on.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	TypeGadgetCreated        = "gadget.created"
	TypeGadgetDecommissioned = "gadget.decommissioned"
	TypeGadgetSelfDestruct   = "gadget.self_destruct"
)

type GadgetEvent struct {
	Type       string    `json:"type"`
	GadgetID   string    `json:"gadget_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

type GadgetEventPublisher struct {
	conn      *amqp.Connection
	queueName string
}

func NewGadgetEventPublisher(conn *amqp.Connection, queueName string) *GadgetEventPublisher {
	return &GadgetEventPublisher{
		conn:      conn,
		queueName: queueName,
	}
}

func (p *GadgetEventPublisher) Publish(ctx context.Context, eventType, gadgetID string) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("open rabbitmq channel failed: %w", err)
	}
	defer ch.Close()

	_, err = ch.QueueDeclare(
		p.queueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare queue failed: %w", err)
	}

	payload, err := json.Marshal(GadgetEvent{
		Type:       eventType,
		GadgetID:   gadgetID,
		OccurredAt: time.Now(),
	})
	if err != nil {
		return fmt.Errorf("marshal gadget event failed: %w", err)
	}

	if err := ch.PublishWithContext(
		ctx,
		"",
		p.queueName,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         payload,
			DeliveryMode: amqp.Persistent,
		},
	); err != nil {
		return fmt.Errorf("publish gadget event failed: %w", err)
	}
	return nil
}
