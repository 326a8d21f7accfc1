package repository

import (
	"context"
	"testing"

	"dermatriagem-api/internal/domain/entity"
	"dermatriagem-api/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionarioRepositoryRejectsUngatedAnswers(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewQuestionarioRepository()
	ctx := context.Background()

	outras := "Asma"
	err := repo.CreateSaudeGeral(ctx, db, &entity.SaudeGeral{DoencasCronicas: false, OutrasDoencas: &outras})
	assert.ErrorIs(t, err, entity.ErrCampoCondicional)

	err = repo.CreateAvaliacaoFototipo(ctx, db, &entity.AvaliacaoFototipo{CorPele: 5})
	assert.ErrorIs(t, err, entity.ErrValorInvalido)

	var n int64
	require.NoError(t, db.Model(&entity.SaudeGeral{}).Count(&n).Error)
	assert.Zero(t, n)
	require.NoError(t, db.Model(&entity.AvaliacaoFototipo{}).Count(&n).Error)
	assert.Zero(t, n)

	ok := &entity.SaudeGeral{DoencasCronicas: true, OutrasDoencas: &outras}
	require.NoError(t, repo.CreateSaudeGeral(ctx, db, ok))
	assert.NotZero(t, ok.ID)
}
