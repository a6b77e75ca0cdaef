package queue

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/mstancik/leadgen-backend/internal/infra/http/middleware"
	"github.com/mstancik/leadgen-backend/internal/infra/integration/crm"
)

// CRMClient is the downstream contact sink the worker feeds.
type CRMClient interface {
	UpsertContact(ctx context.Context, input crm.ContactInput) error
}

type Worker struct {
	Channel *amqp.Channel
	CRM     CRMClient
}

func NewWorker(ch *amqp.Channel, crmClient CRMClient) *Worker {
	return &Worker{
		Channel: ch,
		CRM:     crmClient,
	}
}

// Start consumes lead events and mirrors them into the CRM. Malformed
// messages are rejected without requeue so they drain to the DLQ.
func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		logrus.Fatalf("rabbitmq consumer registration failed: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload LeadCapturedPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				logrus.Warnf("[WORKER] invalid lead event: %s", err)
				d.Nack(false, false)
				continue
			}

			logrus.WithField("lead_id", payload.LeadID).Info("[WORKER] syncing lead to CRM")

			if err := w.processMessage(context.Background(), payload); err != nil {
				logrus.WithField("lead_id", payload.LeadID).Errorf("[WORKER] CRM sync failed: %s", err)
				middleware.RecordIntegrationError("crm")
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	logrus.Infof(" [*] CRM sync worker waiting on queue '%s'", queueName)
	<-forever
}

func (w *Worker) processMessage(ctx context.Context, payload LeadCapturedPayload) error {
	return w.CRM.UpsertContact(ctx, crm.ContactInput{
		LeadID:  payload.LeadID,
		Email:   payload.Email,
		Name:    payload.Name,
		Phone:   payload.Phone,
		Company: payload.Company,
		Status:  payload.Status,
		Reason:  payload.Reason,
	})
}
