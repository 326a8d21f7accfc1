package mail

import (
	"context"
	"testing"
	"time"

	"dermatriagem-api/config"
	"dermatriagem-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderInvite(t *testing.T) {
	body, err := RenderInvite(entity.InviteEmail{
		To:        "novo@exemplo.com",
		Link:      "sitebonito.com/completar-cadastro?token=abc",
		ExpiresAt: time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Contains(t, body, "novo@exemplo.com")
	assert.Contains(t, body, "completar-cadastro?token=abc")
	assert.Contains(t, body, "02/03/2026 10:30")
}

func TestSendInviteHonorsCanceledContext(t *testing.T) {
	sender := NewEmailSender(config.SMTPConfig{Host: "localhost", Port: 1})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := sender.SendInvite(ctx, entity.InviteEmail{To: "a@b.com", Link: "x"})
	assert.ErrorIs(t, err, context.Canceled)
}
