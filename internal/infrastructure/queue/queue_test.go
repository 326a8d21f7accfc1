package queue

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"dermatriagem-api/internal/domain/entity"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	args := m.Called(exchange, key, msg)
	return args.Error(0)
}

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) SendInvite(ctx context.Context, email entity.InviteEmail) error {
	return m.Called(email).Error(0)
}

type fakeAcknowledger struct {
	acked  bool
	nacked bool
}

func (f *fakeAcknowledger) Ack(tag uint64, multiple bool) error {
	f.acked = true
	return nil
}

func (f *fakeAcknowledger) Nack(tag uint64, multiple, requeue bool) error {
	f.nacked = true
	return nil
}

func (f *fakeAcknowledger) Reject(tag uint64, requeue bool) error {
	f.nacked = true
	return nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestInvitePublisherSubmit(t *testing.T) {
	pub := new(mockPublisher)
	email := entity.InviteEmail{To: "novo@exemplo.com", Link: "x?token=t"}

	pub.On("PublishWithContext", ExchangeName, RoutingKey, mock.MatchedBy(func(msg amqp.Publishing) bool {
		var got entity.InviteEmail
		return json.Unmarshal(msg.Body, &got) == nil &&
			got.To == email.To &&
			msg.DeliveryMode == amqp.Persistent
	})).Return(nil).Once()

	NewInvitePublisher(pub, quietLogger()).Submit(context.Background(), email)

	pub.AssertExpectations(t)
}

func TestInvitePublisherSwallowsErrors(t *testing.T) {
	pub := new(mockPublisher)
	pub.On("PublishWithContext", ExchangeName, RoutingKey, mock.Anything).Return(errors.New("closed"))

	assert.NotPanics(t, func() {
		NewInvitePublisher(pub, quietLogger()).Submit(context.Background(), entity.InviteEmail{To: "a@b.com"})
	})
}

func TestInviteWorkerHandle(t *testing.T) {
	body, err := json.Marshal(entity.InviteEmail{To: "ok@exemplo.com"})
	require.NoError(t, err)

	t.Run("ack on success", func(t *testing.T) {
		mailer := new(mockMailer)
		mailer.On("SendInvite", mock.Anything).Return(nil)
		ack := &fakeAcknowledger{}

		w := NewInviteWorker(nil, mailer, quietLogger())
		w.handle(context.Background(), amqp.Delivery{Acknowledger: ack, Body: body})

		assert.True(t, ack.acked)
		assert.False(t, ack.nacked)
	})

	t.Run("nack on send failure", func(t *testing.T) {
		mailer := new(mockMailer)
		mailer.On("SendInvite", mock.Anything).Return(errors.New("smtp down"))
		ack := &fakeAcknowledger{}

		w := NewInviteWorker(nil, mailer, quietLogger())
		w.handle(context.Background(), amqp.Delivery{Acknowledger: ack, Body: body})

		assert.True(t, ack.nacked)
		assert.False(t, ack.acked)
	})

	t.Run("nack on malformed body", func(t *testing.T) {
		mailer := new(mockMailer)
		ack := &fakeAcknowledger{}

		w := NewInviteWorker(nil, mailer, quietLogger())
		w.handle(context.Background(), amqp.Delivery{Acknowledger: ack, Body: []byte("{")})

		assert.True(t, ack.nacked)
		mailer.AssertNotCalled(t, "SendInvite", mock.Anything)
	})
}
