package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fatec/pi-back/internal/handlers/dto"
	"github.com/fatec/pi-back/internal/services"
)

// RelationMPHandler lida com requisições HTTP de /relation_mp
type RelationMPHandler struct {
	relationMPService *services.RelationMPService
}

// NewRelationMPHandler cria um novo RelationMPHandler
func NewRelationMPHandler(relationMPService *services.RelationMPService) *RelationMPHandler {
	return &RelationMPHandler{relationMPService: relationMPService}
}

// ListRelations lista todos os registros
//
//	@Summary	Lista prescrições
//	@Tags		relation_mp
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		dto.RelationMPResponse
//	@Failure	401	{object}	dto.ErrorResponse
//	@Router		/relation_mp [get]
func (h *RelationMPHandler) ListRelations(c *gin.Context) {
	items, err := h.relationMPService.ListRelations(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToRelationMPResponses(items))
}

// GetRelation busca um registro por ID
//
//	@Summary	Busca uma prescrição
//	@Tags		relation_mp
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"ID"
//	@Success	200	{object}	dto.RelationMPResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/relation_mp/{id} [get]
func (h *RelationMPHandler) GetRelation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	item, err := h.relationMPService.GetRelation(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToRelationMPResponse(item))
}

// CreateRelation cria uma prescrição
//
//	@Summary	Cria uma prescrição
//	@Tags		relation_mp
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		dto.CreateRelationMPRequest	true	"Dados"
//	@Success	200		{object}	dto.RelationMPResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Router		/relation_mp [post]
func (h *RelationMPHandler) CreateRelation(c *gin.Context) {
	var req dto.CreateRelationMPRequest
	if !bindJSON(c, &req) {
		return
	}
	actor, ok := actorID(c, req.UserID)
	if !ok {
		return
	}

	item, err := h.relationMPService.CreateRelation(c.Request.Context(), req.ToInput(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToRelationMPResponse(item))
}

// UpdateRelation altera parcialmente uma prescrição
//
//	@Summary	Altera uma prescrição
//	@Tags		relation_mp
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		int	true	"ID"
//	@Param		request	body		dto.UpdateRelationMPRequest	true	"Campos a alterar"
//	@Success	200		{object}	dto.RelationMPResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Router		/relation_mp/{id} [patch]
func (h *RelationMPHandler) UpdateRelation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateRelationMPRequest
	if !bindJSON(c, &req) {
		return
	}
	actor, ok := actorID(c, req.UserID)
	if !ok {
		return
	}

	item, err := h.relationMPService.UpdateRelation(c.Request.Context(), id, req.ToInput(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToRelationMPResponse(item))
}

// DeleteRelation alterna o soft delete do registro
//
//	@Summary	Alterna a remoção lógica de uma prescrição
//	@Tags		relation_mp
//	@Accept		json
//	@Security	BearerAuth
//	@Param		id		path	int				true	"ID"
//	@Param		request	body	dto.ActorRequest	false	"Usuário responsável"
//	@Success	204
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/relation_mp/{id} [delete]
func (h *RelationMPHandler) DeleteRelation(c *gin.Context) {
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

	if err := h.relationMPService.ToggleDeleted(c.Request.Context(), id, actor); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
