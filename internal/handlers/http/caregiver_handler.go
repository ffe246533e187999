package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fatec/pi-back/internal/handlers/dto"
	"github.com/fatec/pi-back/internal/services"
)

// CaregiverHandler lida com requisições HTTP de /caregiver
type CaregiverHandler struct {
	caregiverService *services.CaregiverService
}

// NewCaregiverHandler cria um novo CaregiverHandler
func NewCaregiverHandler(caregiverService *services.CaregiverService) *CaregiverHandler {
	return &CaregiverHandler{caregiverService: caregiverService}
}

// ListCaregivers lista todos os registros
func (h *CaregiverHandler) ListCaregivers(c *gin.Context) {
	items, err := h.caregiverService.ListCaregivers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCaregiverResponses(items))
}

// GetCaregiver busca um registro por ID
func (h *CaregiverHandler) GetCaregiver(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	item, err := h.caregiverService.GetCaregiver(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCaregiverResponse(item))
}

// CreateCaregiver cria um cuidador
func (h *CaregiverHandler) CreateCaregiver(c *gin.Context) {
	var req dto.CreateCaregiverRequest
	if !bindJSON(c, &req) {
		return
	}
	// o usuário vinculado também é o responsável pela criação
	actor := req.UserID

	item, err := h.caregiverService.CreateCaregiver(c.Request.Context(), req.ToInput(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCaregiverResponse(item))
}

// UpdateCaregiver altera parcialmente um cuidador
func (h *CaregiverHandler) UpdateCaregiver(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateCaregiverRequest
	if !bindJSON(c, &req) {
		return
	}
	actor, ok := actorID(c, req.UserID)
	if !ok {
		return
	}

	item, err := h.caregiverService.UpdateCaregiver(c.Request.Context(), id, req.ToInput(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCaregiverResponse(item))
}

// DeleteCaregiver alterna o soft delete do registro
func (h *CaregiverHandler) DeleteCaregiver(c *gin.Context) {
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

	if err := h.caregiverService.ToggleDeleted(c.Request.Context(), id, actor); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
