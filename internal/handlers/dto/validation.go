package dto

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/fatec/pi-back/internal/domain/entities"
)

var registerOnce sync.Once

// RegisterValidations faz o validator do gin reportar nomes JSON e conhecer as regras do domínio
func RegisterValidations() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return field.Name
			}
			return name
		})
		_ = v.RegisterValidation("frequency_unit", func(fl validator.FieldLevel) bool {
			return entities.FrequencyUnit(fl.Field().String()).IsValid()
		})
	})
}

// ValidationErrorsI18n traduz os erros do validator em ValidationError
// Retorna false se err não for um erro de validação
func ValidationErrorsI18n(c *gin.Context, err error) ([]ValidationError, bool) {
	var validationErrors validator.ValidationErrors
	if !stderrors.As(err, &validationErrors) {
		return nil, false
	}

	result := make([]ValidationError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		item := ValidationError{
			Field:   fe.Field(),
			Message: T(c, messageKey(fe.Tag()), map[string]interface{}{"Param": fe.Param()}),
			Tag:     fe.Tag(),
		}
		// senhas nunca voltam na resposta
		if fe.Tag() != "required" && !strings.Contains(strings.ToLower(fe.Field()), "password") {
			item.Value = fmt.Sprint(fe.Value())
		}
		result = append(result, item)
	}
	return result, true
}

func messageKey(tag string) string {
	switch tag {
	case "required", "email", "min", "max", "oneof", "gte", "frequency_unit":
		return "validation." + tag
	default:
		return "validation.invalid"
	}
}
