package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"dermatriagem-api/internal/domain/entity"
	"dermatriagem-api/internal/infrastructure/metrics"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

const sendTimeout = 30 * time.Second

type InviteMailer interface {
	SendInvite(ctx context.Context, email entity.InviteEmail) error
}

// InviteWorker consumes QueueName and sends each invitation. Failed sends are
// nacked without requeue, landing in the dead-letter queue.
type InviteWorker struct {
	ch     *amqp.Channel
	mailer InviteMailer
	log    *logrus.Logger
	done   chan struct{}
}

func NewInviteWorker(ch *amqp.Channel, mailer InviteMailer, log *logrus.Logger) *InviteWorker {
	return &InviteWorker{
		ch:     ch,
		mailer: mailer,
		log:    log,
		done:   make(chan struct{}),
	}
}

// Start registers the consumer and processes deliveries until ctx is done or
// the channel closes.
func (w *InviteWorker) Start(ctx context.Context) error {
	msgs, err := w.ch.Consume(QueueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	go func() {
		defer close(w.done)
		for {
			select {
			case <-ctx.Done():
				return
			case d, ok := <-msgs:
				if !ok {
					return
				}
				w.handle(ctx, d)
			}
		}
	}()

	w.log.WithField("queue", QueueName).Info("Invite worker started")
	return nil
}

// Done is closed when the consume loop exits.
func (w *InviteWorker) Done() <-chan struct{} {
	return w.done
}

func (w *InviteWorker) handle(ctx context.Context, d amqp.Delivery) {
	var email entity.InviteEmail
	if err := json.Unmarshal(d.Body, &email); err != nil {
		w.log.Warnf("Failed to decode invite message: %+v", err)
		d.Nack(false, false)
		return
	}

	sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	if err := w.mailer.SendInvite(sendCtx, email); err != nil {
		w.log.Warnf("Failed to send invite email to %s: %+v", email.To, err)
		metrics.RecordInvite(metrics.InviteFailed)
		d.Nack(false, false)
		return
	}

	metrics.RecordInvite(metrics.InviteSent)
	d.Ack(false)
}
