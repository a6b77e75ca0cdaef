package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// LeadCapturedPayload is the downstream CRM sync event for one captured
// lead. Best-effort: losing one event loses nothing the database has.
type LeadCapturedPayload struct {
	LeadID  string `json:"lead_id"`
	Email   string `json:"email"`
	Name    string `json:"name,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Company string `json:"company,omitempty"`
	Status  string `json:"status"`
	Reason  string `json:"reason,omitempty"`
}

type Producer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *Producer {
	return &Producer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *Producer) PublishLeadCaptured(ctx context.Context, payload LeadCapturedPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("lead event marshal failed: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("lead event publish failed: %w", err)
	}
	return nil
}
