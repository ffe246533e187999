package errors

import (
	"errors"
	"fmt"
)

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções estão em internal/infrastructure/i18n/locales/*.json
var (
	ErrNotFound           = errors.New("error.not_found")
	ErrUserNotFound       = errors.New("error.user_not_found")
	ErrEmailAlreadyExists = errors.New("error.email_already_exists")
	ErrAlreadyExists      = errors.New("error.already_exists")
	ErrInvalidCredentials = errors.New("error.invalid_credentials")
)

// Domain errors
var (
	ErrInvalidInput    = errors.New("error.invalid_input")
	ErrInvalidArgument = errors.New("error.invalid_argument")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base vem de configuração (API_BASE_URL)
//
//nolint:misspell
const (
	ProblemTypeValidation   = "/problems/validation-error"
	ProblemTypeNotFound     = "/problems/not-found"
	ProblemTypeConflict     = "/problems/conflict"
	ProblemTypeUnauthorized = "/problems/unauthorized"
	ProblemTypeInternal     = "/problems/internal-error"
	ProblemTypeBadRequest   = "/problems/bad-request"
)

// Recursos referenciados em erros de NotFound (também são chaves i18n: resource.<nome>)
const (
	ResourceUser       = "user"
	ResourceRole       = "role"
	ResourcePatient    = "patient"
	ResourceCaregiver  = "caregiver"
	ResourceHave       = "have"
	ResourceMedication = "medication"
	ResourceRelationMP = "relation_mp"
	ResourceHistory    = "history"
)

// NotFoundError indica que uma entidade (ou chave estrangeira) não existe
type NotFoundError struct {
	Resource string
	ID       int64
}

// NotFound cria um NotFoundError para o recurso e id informados
func NotFound(resource string, id int64) error {
	return &NotFoundError{Resource: resource, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

// Is permite errors.Is(err, ErrNotFound); usuários também casam com ErrUserNotFound
func (e *NotFoundError) Is(target error) bool {
	if target == ErrNotFound {
		return true
	}
	return target == ErrUserNotFound && e.Resource == ResourceUser
}

// DomainError representa um erro de domínio com contexto adicional
type DomainError struct {
	Type    string
	Title   string
	Field   string
	Message string
	Err     error
}

// InvalidInput cria um erro de validação para um campo
// message é uma chave i18n (ex: "validation.password_too_short")
func InvalidInput(field, message string) error {
	return &DomainError{
		Type:    ProblemTypeValidation,
		Title:   "error.validation.title",
		Field:   field,
		Message: message,
		Err:     ErrInvalidInput,
	}
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}
