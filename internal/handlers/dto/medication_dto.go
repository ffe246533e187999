package dto

import (
	"github.com/fatec/pi-back/internal/domain/entities"
	"github.com/fatec/pi-back/internal/services"
)

// CreateMedicationRequest cadastra um medicamento
type CreateMedicationRequest struct {
	Name               string `json:"name" binding:"required,max=100"`
	MedicationFunction string `json:"medicationFunction" binding:"max=255"`
	UserID             *int64 `json:"userId"`
}

// UpdateMedicationRequest representa uma alteração parcial de medicamento
type UpdateMedicationRequest struct {
	Name               *string `json:"name" binding:"omitempty,max=100"`
	MedicationFunction *string `json:"medicationFunction" binding:"omitempty,max=255"`
	UserID             *int64  `json:"userId"`
}

func (r CreateMedicationRequest) ToInput() services.MedicationInput {
	return services.MedicationInput{Name: r.Name, MedicationFunction: r.MedicationFunction}
}

func (r UpdateMedicationRequest) ToInput() services.UpdateMedicationInput {
	return services.UpdateMedicationInput{Name: r.Name, MedicationFunction: r.MedicationFunction}
}

// MedicationResponse representa a resposta de um medicamento
type MedicationResponse struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	MedicationFunction string `json:"medicationFunction"`
	AuditResponse
}

func ToMedicationResponse(m *entities.Medication) MedicationResponse {
	return MedicationResponse{
		ID:                 m.ID,
		Name:               m.Name,
		MedicationFunction: m.MedicationFunction,
		AuditResponse:      ToAuditResponse(m.Audit),
	}
}

func ToMedicationResponses(medications []*entities.Medication) []MedicationResponse {
	return mapAll(medications, ToMedicationResponse)
}
