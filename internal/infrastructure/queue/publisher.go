package queue

import (
	"context"
	"encoding/json"
	"time"

	"dermatriagem-api/internal/domain/entity"
	"dermatriagem-api/internal/infrastructure/metrics"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

const publishTimeout = 5 * time.Second

// Publisher is the subset of amqp.Channel used to publish.
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// InvitePublisher hands invitation emails to RabbitMQ. Publish failures are
// logged and never returned to the caller.
type InvitePublisher struct {
	ch  Publisher
	log *logrus.Logger
}

func NewInvitePublisher(ch Publisher, log *logrus.Logger) *InvitePublisher {
	return &InvitePublisher{ch: ch, log: log}
}

func (p *InvitePublisher) Submit(ctx context.Context, email entity.InviteEmail) {
	body, err := json.Marshal(email)
	if err != nil {
		p.log.Warnf("Failed to encode invite email: %+v", err)
		metrics.RecordInvite(metrics.InviteFailed)
		return
	}

	// The request may finish before the broker confirms.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	err = p.ch.PublishWithContext(ctx, ExchangeName, RoutingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
	})
	if err != nil {
		p.log.Warnf("Failed to publish invite email for %s: %+v", email.To, err)
		metrics.RecordInvite(metrics.InviteDropped)
		return
	}

	p.log.WithField("to", email.To).Debug("Invite email queued")
}
