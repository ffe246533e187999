package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fatec/pi-back/internal/handlers/dto"
	"github.com/fatec/pi-back/internal/services"
)

// HistoryHandler lida com requisições HTTP de /history
type HistoryHandler struct {
	historyService *services.HistoryService
}

// NewHistoryHandler cria um novo HistoryHandler
func NewHistoryHandler(historyService *services.HistoryService) *HistoryHandler {
	return &HistoryHandler{historyService: historyService}
}

// ListHistories lista todos os registros
func (h *HistoryHandler) ListHistories(c *gin.Context) {
	items, err := h.historyService.ListHistories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToHistoryResponses(items))
}

// GetHistory busca um registro por ID
func (h *HistoryHandler) GetHistory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	item, err := h.historyService.GetHistory(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToHistoryResponse(item))
}

// CreateHistory cria um registro de histórico
func (h *HistoryHandler) CreateHistory(c *gin.Context) {
	var req dto.CreateHistoryRequest
	if !bindJSON(c, &req) {
		return
	}
	actor, ok := actorID(c, req.UserID)
	if !ok {
		return
	}

	item, err := h.historyService.CreateHistory(c.Request.Context(), req.ToInput(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToHistoryResponse(item))
}

// UpdateHistory altera parcialmente um registro de histórico
func (h *HistoryHandler) UpdateHistory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateHistoryRequest
	if !bindJSON(c, &req) {
		return
	}
	actor, ok := actorID(c, req.UserID)
	if !ok {
		return
	}

	item, err := h.historyService.UpdateHistory(c.Request.Context(), id, req.ToInput(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToHistoryResponse(item))
}

// DeleteHistory alterna o soft delete do registro
func (h *HistoryHandler) DeleteHistory(c *gin.Context) {
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

	if err := h.historyService.ToggleDeleted(c.Request.Context(), id, actor); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
