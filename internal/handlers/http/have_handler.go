package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fatec/pi-back/internal/handlers/dto"
	"github.com/fatec/pi-back/internal/services"
)

// HaveHandler lida com requisições HTTP de /have
type HaveHandler struct {
	haveService *services.HaveService
}

// NewHaveHandler cria um novo HaveHandler
func NewHaveHandler(haveService *services.HaveService) *HaveHandler {
	return &HaveHandler{haveService: haveService}
}

// ListHaves lista todos os registros
func (h *HaveHandler) ListHaves(c *gin.Context) {
	items, err := h.haveService.ListHaves(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToHaveResponses(items))
}

// GetHave busca um registro por ID
func (h *HaveHandler) GetHave(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	item, err := h.haveService.GetHave(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToHaveResponse(item))
}

// CreateHave cria um vínculo paciente/cuidador
func (h *HaveHandler) CreateHave(c *gin.Context) {
	var req dto.CreateHaveRequest
	if !bindJSON(c, &req) {
		return
	}
	actor, ok := actorID(c, req.UserID)
	if !ok {
		return
	}

	item, err := h.haveService.CreateHave(c.Request.Context(), req.ToInput(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToHaveResponse(item))
}

// UpdateHave altera parcialmente um vínculo paciente/cuidador
func (h *HaveHandler) UpdateHave(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateHaveRequest
	if !bindJSON(c, &req) {
		return
	}
	actor, ok := actorID(c, req.UserID)
	if !ok {
		return
	}

	item, err := h.haveService.UpdateHave(c.Request.Context(), id, req.ToInput(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToHaveResponse(item))
}

// DeleteHave alterna o soft delete do registro
func (h *HaveHandler) DeleteHave(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.ActorRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	actor, ok := actorID(c, req.UserID)
	if !ok {
		return
	}

	if err := h.haveService.ToggleDeleted(c.Request.Context(), id, actor); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
