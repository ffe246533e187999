package dto

import (
	"github.com/fatec/pi-back/internal/domain/entities"
	"github.com/fatec/pi-back/internal/services"
)

// CreateCaregiverRequest cria o perfil de cuidador do usuário userId
type CreateCaregiverRequest struct {
	UserID   int64  `json:"userId" binding:"required"`
	Relation string `json:"relation" binding:"max=100"`
}

// UpdateCaregiverRequest representa uma alteração parcial de cuidador
type UpdateCaregiverRequest struct {
	Relation *string `json:"relation" binding:"omitempty,max=100"`
	UserID   *int64  `json:"userId"`
}

func (r CreateCaregiverRequest) ToInput() services.CaregiverInput {
	return services.CaregiverInput{UserID: r.UserID, Relation: r.Relation}
}

func (r UpdateCaregiverRequest) ToInput() services.UpdateCaregiverInput {
	return services.UpdateCaregiverInput{Relation: r.Relation}
}

// CaregiverResponse representa a resposta de um cuidador
type CaregiverResponse struct {
	ID       int64  `json:"id"`
	Relation string `json:"relation"`
	AuditResponse
}

func ToCaregiverResponse(cg *entities.Caregiver) CaregiverResponse {
	return CaregiverResponse{
		ID:            cg.ID,
		Relation:      cg.Relation,
		AuditResponse: ToAuditResponse(cg.Audit),
	}
}

func ToCaregiverResponses(caregivers []*entities.Caregiver) []CaregiverResponse {
	return mapAll(caregivers, ToCaregiverResponse)
}
