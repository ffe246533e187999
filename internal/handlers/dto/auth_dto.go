package dto

// LoginRequest representa as credenciais de login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carrega o token de acesso emitido
type LoginResponse struct {
	Token string `json:"token"`
}

// RegisterRequest representa a requisição de cadastro de usuário
type RegisterRequest struct {
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,min=6,max=72"`
	Name          string `json:"name" binding:"required,max=100"`
	RoleID        int64  `json:"roleId" binding:"required"`
	CreatorUserID *int64 `json:"creatorUserId"`
}
