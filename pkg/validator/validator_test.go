package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type inviteInput struct {
	Email string `json:"email" validate:"required,email"`
	CPF   string `json:"cpf" validate:"required,cpf"`
	Role  uint   `json:"role_id" validate:"required,gt=0"`
}

func TestValidateCPF(t *testing.T) {
	v := NewValidator()

	cases := map[string]bool{
		"12345678901":    true,
		"1234567890":     false,
		"123456789012":   false,
		"1234567890a":    false,
		"123.456.789-01": false,
	}
	for cpf, ok := range cases {
		err := v.Validate(inviteInput{Email: "a@b.com", CPF: cpf, Role: 1})
		if ok {
			assert.NoError(t, err, cpf)
		} else {
			assert.Error(t, err, cpf)
		}
	}
}

func TestFormatValidationErrorsUsesJSONNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(inviteInput{Email: "invalido", CPF: "1"})
	errs := v.FormatValidationErrors(err)

	assert.Equal(t, "email deve ser um email válido", errs["email"])
	assert.Equal(t, "cpf deve conter 11 dígitos", errs["cpf"])
	assert.Equal(t, "role_id é obrigatório", errs["role_id"])
}
