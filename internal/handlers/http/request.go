package http

import (
	stderrors "errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fatec/pi-back/internal/handlers/dto"
	"github.com/fatec/pi-back/internal/handlers/middleware"
)

// pathID lê o parâmetro :id; valores não numéricos respondem 400
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		dto.ValidationErrorResponseI18n(c, http.StatusBadRequest, []dto.ValidationError{{
			Field:   "id",
			Message: dto.T(c, "validation.invalid"),
			Value:   c.Param("id"),
		}}).Render(c)
		return 0, false
	}
	return id, true
}

// bindJSON faz o binding do corpo e responde 400 em caso de falha
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondBindingError(c, err)
		return false
	}
	return true
}

// bindOptionalJSON aceita corpo vazio (ex: DELETE sem userId)
func bindOptionalJSON(c *gin.Context, req interface{}) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(req); err != nil && !stderrors.Is(err, io.EOF) {
		respondBindingError(c, err)
		return false
	}
	return true
}

// actorID resolve o usuário responsável pela mutação
// Prioridade: userId do corpo, depois o usuário autenticado
func actorID(c *gin.Context, bodyUserID *int64) (int64, bool) {
	if bodyUserID != nil {
		return *bodyUserID, true
	}
	if principal, ok := middleware.PrincipalFrom(c); ok {
		return principal.UserID, true
	}
	dto.ValidationErrorResponseI18n(c, http.StatusBadRequest, []dto.ValidationError{{
		Field:   "userId",
		Message: dto.T(c, "validation.actor_required"),
		Tag:     "required",
	}}).Render(c)
	return 0, false
}
