package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fatec/pi-back/internal/handlers/dto"
	"github.com/fatec/pi-back/internal/services"
)

// PatientHandler lida com requisições HTTP de /patient
type PatientHandler struct {
	patientService *services.PatientService
}

// NewPatientHandler cria um novo PatientHandler
func NewPatientHandler(patientService *services.PatientService) *PatientHandler {
	return &PatientHandler{patientService: patientService}
}

// ListPatients lista todos os registros
//
//	@Summary	Lista pacientes
//	@Tags		patient
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		dto.PatientResponse
//	@Failure	401	{object}	dto.ErrorResponse
//	@Router		/patient [get]
func (h *PatientHandler) ListPatients(c *gin.Context) {
	items, err := h.patientService.ListPatients(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPatientResponses(items))
}

// GetPatient busca um registro por ID
//
//	@Summary	Busca um paciente
//	@Tags		patient
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"ID"
//	@Success	200	{object}	dto.PatientResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/patient/{id} [get]
func (h *PatientHandler) GetPatient(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	item, err := h.patientService.GetPatient(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPatientResponse(item))
}

// CreatePatient cria um paciente
//
//	@Summary	Cria um paciente
//	@Tags		patient
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		dto.CreatePatientRequest	true	"Dados"
//	@Success	200		{object}	dto.PatientResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Router		/patient [post]
func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var req dto.CreatePatientRequest
	if !bindJSON(c, &req) {
		return
	}
	// o usuário vinculado também é o responsável pela criação
	actor := req.UserID

	item, err := h.patientService.CreatePatient(c.Request.Context(), req.ToInput(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPatientResponse(item))
}

// UpdatePatient altera parcialmente um paciente
//
//	@Summary	Altera um paciente
//	@Tags		patient
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		int	true	"ID"
//	@Param		request	body		dto.UpdatePatientRequest	true	"Campos a alterar"
//	@Success	200		{object}	dto.PatientResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Router		/patient/{id} [patch]
func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdatePatientRequest
	if !bindJSON(c, &req) {
		return
	}
	actor, ok := actorID(c, req.UserID)
	if !ok {
		return
	}

	item, err := h.patientService.UpdatePatient(c.Request.Context(), id, req.ToInput(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPatientResponse(item))
}

// DeletePatient alterna o soft delete do registro
//
//	@Summary	Alterna a remoção lógica de um paciente
//	@Tags		patient
//	@Accept		json
//	@Security	BearerAuth
//	@Param		id		path	int				true	"ID"
//	@Param		request	body	dto.ActorRequest	false	"Usuário responsável"
//	@Success	204
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/patient/{id} [delete]
func (h *PatientHandler) DeletePatient(c *gin.Context) {
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

	if err := h.patientService.ToggleDeleted(c.Request.Context(), id, actor); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
