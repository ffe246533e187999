package dto

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/fatec/pi-back/internal/domain/entities"
	"github.com/fatec/pi-back/internal/domain/errors"
	"github.com/fatec/pi-back/internal/services"
)

// UpdateUserRequest representa uma alteração parcial de usuário
// role aceita número ou string numérica
type UpdateUserRequest struct {
	Email    *string         `json:"email"`
	Name     *string         `json:"name"`
	Password *string         `json:"password"`
	Role     json.RawMessage `json:"role" swaggertype:"integer"`
	UserID   *int64          `json:"userId"`
}

// ToInput converte a requisição; role não numérico é InvalidInput
func (r UpdateUserRequest) ToInput() (services.UpdateUserInput, error) {
	input := services.UpdateUserInput{
		Email:    r.Email,
		Name:     r.Name,
		Password: r.Password,
	}

	raw := bytes.TrimSpace(r.Role)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return input, nil
	}

	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		text = string(raw)
	}
	roleID, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return input, errors.InvalidInput("role", "validation.invalid_role_id")
	}
	input.RoleID = &roleID
	return input, nil
}

// UpdatePasswordRequest representa a troca de senha
type UpdatePasswordRequest struct {
	Password string `json:"password" binding:"required,min=6,max=72"`
	UserID   *int64 `json:"userId"`
}

// UserResponse representa a resposta de um usuário (sem o hash de senha)
type UserResponse struct {
	ID     int64  `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	RoleID int64  `json:"roleId"`
	AuditResponse
}

// ToUserResponse converte uma entidade User para UserResponse
func ToUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:            user.ID,
		Email:         user.Email.String(),
		Name:          user.Name,
		RoleID:        user.RoleID,
		AuditResponse: ToAuditResponse(user.Audit),
	}
}

// ToUserResponses converte uma lista de entidades User para UserResponse
func ToUserResponses(users []*entities.User) []UserResponse {
	return mapAll(users, ToUserResponse)
}
