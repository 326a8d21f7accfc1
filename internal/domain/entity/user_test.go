package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserHasRole(t *testing.T) {
	u := &User{Roles: []Role{{ID: 1, Name: RoleSupervisor}}}

	assert.True(t, u.HasRole(RoleAdmin, RoleSupervisor))
	assert.False(t, u.HasRole(RoleAdmin))
	assert.False(t, (&User{}).HasRole(RoleAdmin))
}

func TestUserIsFunctional(t *testing.T) {
	u := &User{
		FlAtivo:       true,
		Roles:         []Role{{ID: 1, Name: RolePesquisador}},
		UnidadesSaude: []UnidadeSaude{{ID: 7}},
	}
	assert.True(t, u.IsFunctional())
	assert.True(t, u.HasUnidadeSaude(7))
	assert.False(t, u.HasUnidadeSaude(8))

	u.FlAtivo = false
	assert.False(t, u.IsFunctional())

	u.FlAtivo = true
	u.UnidadesSaude = nil
	assert.False(t, u.IsFunctional())
}

func TestAtendimentoHasDependencies(t *testing.T) {
	a := &Atendimento{
		PacienteID: 1, UserID: 1, UnidadeSaudeID: 1, TermoConsentimentoID: 1,
		SaudeGeralID: 1, AvaliacaoFototipoID: 1, HistoricoCancerPeleID: 1,
		FatoresRiscoProtecaoID: 1, InvestigacaoLesoesSuspeitasID: 1,
	}
	assert.True(t, a.HasDependencies())

	a.TermoConsentimentoID = 0
	assert.False(t, a.HasDependencies())
}

func TestLocaisLesaoAreUnique(t *testing.T) {
	seen := make(map[string]bool, len(LocaisLesao))
	for _, nome := range LocaisLesao {
		assert.False(t, seen[nome], "duplicate %s", nome)
		seen[nome] = true
	}
	assert.Len(t, LocaisLesao, 31)
}
