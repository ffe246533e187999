package dto

import (
	"time"

	"github.com/fatec/pi-back/internal/domain/entities"
	"github.com/fatec/pi-back/internal/services"
)

// CreateRoleRequest representa a criação de um papel
type CreateRoleRequest struct {
	Name        string `json:"name" binding:"required,max=50"`
	Description string `json:"description" binding:"max=255"`
}

// UpdateRoleRequest representa uma alteração parcial de papel
type UpdateRoleRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=50"`
	Description *string `json:"description" binding:"omitempty,max=255"`
}

func (r CreateRoleRequest) ToInput() services.RoleInput {
	return services.RoleInput{Name: r.Name, Description: r.Description}
}

func (r UpdateRoleRequest) ToInput() services.UpdateRoleInput {
	return services.UpdateRoleInput{Name: r.Name, Description: r.Description}
}

// RoleResponse representa a resposta de um papel
type RoleResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Authority   string    `json:"authority"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Deleted     bool      `json:"deleted"`
}

func ToRoleResponse(role *entities.Role) RoleResponse {
	return RoleResponse{
		ID:          role.ID,
		Name:        role.Name,
		Description: role.Description,
		Authority:   role.Authority(),
		CreatedAt:   role.CreatedAt,
		UpdatedAt:   role.UpdatedAt,
		Deleted:     role.Deleted,
	}
}

func ToRoleResponses(roles []*entities.Role) []RoleResponse {
	return mapAll(roles, ToRoleResponse)
}
