package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fatec/pi-back/internal/handlers/dto"
	"github.com/fatec/pi-back/internal/services"
)

// MedicationHandler lida com requisições HTTP de /medication
type MedicationHandler struct {
	medicationService *services.MedicationService
}

// NewMedicationHandler cria um novo MedicationHandler
func NewMedicationHandler(medicationService *services.MedicationService) *MedicationHandler {
	return &MedicationHandler{medicationService: medicationService}
}

// ListMedications lista todos os registros
func (h *MedicationHandler) ListMedications(c *gin.Context) {
	items, err := h.medicationService.ListMedications(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToMedicationResponses(items))
}

// GetMedication busca um registro por ID
func (h *MedicationHandler) GetMedication(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	item, err := h.medicationService.GetMedication(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToMedicationResponse(item))
}

// CreateMedication cria um medicamento
func (h *MedicationHandler) CreateMedication(c *gin.Context) {
	var req dto.CreateMedicationRequest
	if !bindJSON(c, &req) {
		return
	}
	actor, ok := actorID(c, req.UserID)
	if !ok {
		return
	}

	item, err := h.medicationService.CreateMedication(c.Request.Context(), req.ToInput(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToMedicationResponse(item))
}

// UpdateMedication altera parcialmente um medicamento
func (h *MedicationHandler) UpdateMedication(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateMedicationRequest
	if !bindJSON(c, &req) {
		return
	}
	actor, ok := actorID(c, req.UserID)
	if !ok {
		return
	}

	item, err := h.medicationService.UpdateMedication(c.Request.Context(), id, req.ToInput(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToMedicationResponse(item))
}

// DeleteMedication alterna o soft delete do registro
func (h *MedicationHandler) DeleteMedication(c *gin.Context) {
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

	if err := h.medicationService.ToggleDeleted(c.Request.Context(), id, actor); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
