package service

import (
	"context"
	"sync"
	"time"

	"dermatriagem-api/internal/domain/entity"
	"dermatriagem-api/internal/infrastructure/metrics"

	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc"
)

const inviteSendTimeout = 30 * time.Second

// InviteNotifier accepts invitation emails for background delivery. Submit
// never blocks on delivery and never reports its outcome.
type InviteNotifier interface {
	Submit(ctx context.Context, email entity.InviteEmail)
}

type InviteMailer interface {
	SendInvite(ctx context.Context, email entity.InviteEmail) error
}

// InviteDispatcher is the in-process InviteNotifier: a bounded queue drained by
// a fixed pool of workers. When the queue is full the email is dropped.
type InviteDispatcher struct {
	mailer InviteMailer
	log    *logrus.Logger
	tasks  chan entity.InviteEmail
	wg     *conc.WaitGroup

	mu     sync.RWMutex
	closed bool
}

func NewInviteDispatcher(mailer InviteMailer, log *logrus.Logger, workers, queueSize int) *InviteDispatcher {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}

	d := &InviteDispatcher{
		mailer: mailer,
		log:    log,
		tasks:  make(chan entity.InviteEmail, queueSize),
		wg:     conc.NewWaitGroup(),
	}
	for i := 0; i < workers; i++ {
		d.wg.Go(d.work)
	}
	return d
}

func (d *InviteDispatcher) Submit(ctx context.Context, email entity.InviteEmail) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.log.Warnf("Invite dispatcher stopped, dropping email to %s", email.To)
		metrics.RecordInvite(metrics.InviteDropped)
		return
	}

	select {
	case d.tasks <- email:
	default:
		d.log.Warnf("Invite queue full, dropping email to %s", email.To)
		metrics.RecordInvite(metrics.InviteDropped)
	}
}

// Stop refuses new emails, drains the queue and waits for the workers.
func (d *InviteDispatcher) Stop() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.tasks)
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *InviteDispatcher) work() {
	for email := range d.tasks {
		d.send(email)
	}
}

func (d *InviteDispatcher) send(email entity.InviteEmail) {
	ctx, cancel := context.WithTimeout(context.Background(), inviteSendTimeout)
	defer cancel()

	if err := d.mailer.SendInvite(ctx, email); err != nil {
		d.log.Warnf("Failed to send invite email to %s: %+v", email.To, err)
		metrics.RecordInvite(metrics.InviteFailed)
		return
	}

	d.log.WithField("to", email.To).Info("Invite email sent")
	metrics.RecordInvite(metrics.InviteSent)
}
