package http

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fatec/pi-back/internal/domain/errors"
	"github.com/fatec/pi-back/internal/handlers/dto"
	"github.com/fatec/pi-back/internal/services"
)

// AuthHandler lida com login e cadastro
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login autentica o usuário e devolve um token de acesso
//
//	@Summary	Autentica um usuário
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.LoginRequest	true	"Credenciais"
//	@Success	200		{object}	dto.LoginResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	401		{object}	dto.ErrorResponse
//	@Router		/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: token})
}

// Register cadastra um novo usuário
//
//	@Summary	Cadastra um usuário
//	@Tags		auth
//	@Accept		json
//	@Produce	plain
//	@Param		request	body		dto.RegisterRequest	true	"Dados do usuário"
//	@Success	200		{string}	string				"Usuário registrado com sucesso."
//	@Failure	400		{string}	string				"Email já cadastrado."
//	@Failure	404		{object}	dto.ErrorResponse
//	@Router		/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	_, err := h.authService.Register(c.Request.Context(), services.RegisterInput{
		Email:         req.Email,
		Password:      req.Password,
		Name:          req.Name,
		RoleID:        req.RoleID,
		CreatorUserID: req.CreatorUserID,
	})
	if stderrors.Is(err, errors.ErrEmailAlreadyExists) {
		c.String(http.StatusBadRequest, dto.T(c, "error.email_already_exists"))
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.String(http.StatusOK, dto.T(c, "auth.register.success"))
}
