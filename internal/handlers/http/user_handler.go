package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fatec/pi-back/internal/handlers/dto"
	"github.com/fatec/pi-back/internal/services"
)

// UserHandler lida com requisições HTTP relacionadas a usuários
// O cadastro fica em AuthHandler.Register
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler cria um novo UserHandler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ListUsers lista usuários, inclusive os removidos
//
//	@Summary	Lista usuários
//	@Tags		user
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		dto.UserResponse
//	@Failure	401	{object}	dto.ErrorResponse
//	@Router		/user [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponses(users))
}

// GetUser busca um usuário por ID
//
//	@Summary	Busca um usuário
//	@Tags		user
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"ID do usuário"
//	@Success	200	{object}	dto.UserResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/user/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// UpdateUser altera parcialmente um usuário
//
//	@Summary	Altera um usuário
//	@Tags		user
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		int						true	"ID do usuário"
//	@Param		request	body		dto.UpdateUserRequest	true	"Campos a alterar"
//	@Success	200		{object}	dto.UserResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Failure	422		{object}	dto.ErrorResponse
//	@Router		/user/{id} [patch]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}
	actor, ok := actorID(c, req.UserID)
	if !ok {
		return
	}
	input, err := req.ToInput()
	if err != nil {
		respondError(c, err)
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), id, input, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// UpdatePassword troca a senha de um usuário
//
//	@Summary	Troca a senha
//	@Tags		user
//	@Accept		json
//	@Security	BearerAuth
//	@Param		id		path	int							true	"ID do usuário"
//	@Param		request	body	dto.UpdatePasswordRequest	true	"Nova senha"
//	@Success	204
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/user/password/{id} [put]
func (h *UserHandler) UpdatePassword(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdatePasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	actor, ok := actorID(c, req.UserID)
	if !ok {
		return
	}

	if err := h.userService.UpdatePassword(c.Request.Context(), id, req.Password, actor); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteUser alterna o soft delete de um usuário
//
//	@Summary	Alterna a remoção lógica de um usuário
//	@Tags		user
//	@Accept		json
//	@Security	BearerAuth
//	@Param		id		path	int					true	"ID do usuário"
//	@Param		request	body	dto.ActorRequest	false	"Usuário responsável"
//	@Success	204
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/user/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
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

	if err := h.userService.ToggleDeleted(c.Request.Context(), id, actor); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
