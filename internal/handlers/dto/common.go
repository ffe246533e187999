package dto

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	"github.com/fatec/pi-back/internal/domain/errors"
)

// BaseURLContextKey guarda a URL base usada nos URIs de tipo dos problemas
const BaseURLContextKey = "base_url"

const defaultBaseURL = "http://localhost:8080"

// ErrorResponse segue RFC 7807 (Problem Details for HTTP APIs)
type ErrorResponse struct {
	problems.Problem
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidationError representa um erro de validação de campo
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
	Value   string `json:"value,omitempty"`
}

// NewErrorResponseI18n cria uma resposta de erro usando i18n
func NewErrorResponseI18n(c *gin.Context, problemType, titleKey, detailKey string, status int, params ...map[string]interface{}) ErrorResponse {
	detail := ""
	if detailKey != "" {
		detail = T(c, detailKey, params...)
	}

	problem := problems.NewDetailedProblem(status, detail)
	problem.Type = baseURL(c) + problemType
	problem.Title = T(c, titleKey, params...)
	problem.Instance = c.Request.URL.Path

	return ErrorResponse{Problem: *problem}
}

// Render escreve o problema com o media type application/problem+json
func (r ErrorResponse) Render(c *gin.Context) {
	c.Header("Content-Type", problems.ProblemMediaType)
	c.JSON(r.Status, r)
}

func baseURL(c *gin.Context) string {
	if url := c.GetString(BaseURLContextKey); url != "" {
		return url
	}
	return defaultBaseURL
}

// ValidationErrorResponseI18n cria uma resposta de erro de validação
func ValidationErrorResponseI18n(c *gin.Context, status int, validationErrors []ValidationError) ErrorResponse {
	response := NewErrorResponseI18n(c, errors.ProblemTypeValidation, "error.validation.title", "error.validation.detail", status)
	response.Errors = validationErrors
	return response
}

// BadRequestErrorResponseI18n cria uma resposta 400 para corpo ou parâmetros malformados
func BadRequestErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(c, errors.ProblemTypeBadRequest, "error.bad_request.title", "error.bad_request.detail", http.StatusBadRequest)
}

// InvalidArgumentErrorResponseI18n cria uma resposta 422 para valores que o domínio não processa
func InvalidArgumentErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(c, errors.ProblemTypeValidation, "error.invalid_argument.title", "error.invalid_argument.detail", http.StatusUnprocessableEntity)
}

// NotFoundErrorResponseI18n cria uma resposta de erro 404
// resource é o nome do recurso (chave resource.<nome>)
func NotFoundErrorResponseI18n(c *gin.Context, resource string, id int64) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		errors.ProblemTypeNotFound,
		"error.not_found.title",
		"error.not_found.detail",
		http.StatusNotFound,
		map[string]interface{}{"Resource": T(c, "resource."+resource), "ID": id},
	)
}

// ConflictErrorResponseI18n cria uma resposta de erro 409
func ConflictErrorResponseI18n(c *gin.Context, detailKey string, params ...map[string]interface{}) ErrorResponse {
	return NewErrorResponseI18n(c, errors.ProblemTypeConflict, "error.conflict.title", detailKey, http.StatusConflict, params...)
}

// UnauthorizedErrorResponseI18n cria uma resposta de erro 401
// detailKey vazio usa a mensagem padrão de autenticação obrigatória
func UnauthorizedErrorResponseI18n(c *gin.Context, detailKey string) ErrorResponse {
	if detailKey == "" {
		detailKey = "error.unauthorized.detail"
	}
	return NewErrorResponseI18n(c, errors.ProblemTypeUnauthorized, "error.unauthorized.title", detailKey, http.StatusUnauthorized)
}

// InternalErrorResponseI18n cria uma resposta de erro 500
func InternalErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(c, errors.ProblemTypeInternal, "error.internal.title", "error.internal.detail", http.StatusInternalServerError)
}
