package http

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fatec/pi-back/internal/domain/errors"
	"github.com/fatec/pi-back/internal/handlers/dto"
)

// respondError converte erros de domínio em respostas RFC 7807
func respondError(c *gin.Context, err error) {
	var (
		notFound    *errors.NotFoundError
		domainError *errors.DomainError
	)

	switch {
	case stderrors.As(err, &notFound):
		dto.NotFoundErrorResponseI18n(c, notFound.Resource, notFound.ID).Render(c)
	case stderrors.As(err, &domainError):
		dto.ValidationErrorResponseI18n(c, http.StatusUnprocessableEntity, []dto.ValidationError{{
			Field:   domainError.Field,
			Message: dto.T(c, domainError.Message, map[string]interface{}{"Param": ""}),
		}}).Render(c)
	case stderrors.Is(err, errors.ErrInvalidArgument), stderrors.Is(err, errors.ErrInvalidInput):
		dto.InvalidArgumentErrorResponseI18n(c).Render(c)
	case stderrors.Is(err, errors.ErrEmailAlreadyExists):
		dto.ConflictErrorResponseI18n(c, "error.email_already_exists").Render(c)
	case stderrors.Is(err, errors.ErrAlreadyExists):
		dto.ConflictErrorResponseI18n(c, "error.already_exists").Render(c)
	case stderrors.Is(err, errors.ErrInvalidCredentials):
		dto.UnauthorizedErrorResponseI18n(c, "error.invalid_credentials").Render(c)
	default:
		_ = c.Error(err)
		dto.InternalErrorResponseI18n(c).Render(c)
	}
}

// respondBindingError responde 400 para corpos que não passam no binding
func respondBindingError(c *gin.Context, err error) {
	if validationErrors, ok := dto.ValidationErrorsI18n(c, err); ok {
		dto.ValidationErrorResponseI18n(c, http.StatusBadRequest, validationErrors).Render(c)
		return
	}
	dto.BadRequestErrorResponseI18n(c).Render(c)
}

// Unauthorized é a resposta das rotas protegidas para requisições anônimas
func Unauthorized(c *gin.Context) {
	dto.UnauthorizedErrorResponseI18n(c, "").Render(c)
}
