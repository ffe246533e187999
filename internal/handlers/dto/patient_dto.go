package dto

import (
	"github.com/fatec/pi-back/internal/domain/entities"
	"github.com/fatec/pi-back/internal/domain/valueobjects"
	"github.com/fatec/pi-back/internal/services"
)

// CreatePatientRequest cria o perfil de paciente do usuário userId
// userId também é registrado como responsável pela criação
type CreatePatientRequest struct {
	UserID           int64              `json:"userId" binding:"required"`
	Birthday         *valueobjects.Date `json:"birthday" swaggertype:"string" example:"1990-05-04"`
	PatientCondition string             `json:"patientCondition" binding:"max=255"`
}

// UpdatePatientRequest representa uma alteração parcial de paciente
type UpdatePatientRequest struct {
	Birthday         *valueobjects.Date `json:"birthday" swaggertype:"string" example:"1990-05-04"`
	PatientCondition *string            `json:"patientCondition" binding:"omitempty,max=255"`
	UserID           *int64             `json:"userId"`
}

func (r CreatePatientRequest) ToInput() services.PatientInput {
	return services.PatientInput{
		UserID:           r.UserID,
		Birthday:         r.Birthday,
		PatientCondition: r.PatientCondition,
	}
}

func (r UpdatePatientRequest) ToInput() services.UpdatePatientInput {
	return services.UpdatePatientInput{
		Birthday:         r.Birthday,
		PatientCondition: r.PatientCondition,
	}
}

// PatientResponse representa a resposta de um paciente
type PatientResponse struct {
	ID               int64              `json:"id"`
	Birthday         *valueobjects.Date `json:"birthday" swaggertype:"string"`
	PatientCondition string             `json:"patientCondition"`
	AuditResponse
}

func ToPatientResponse(p *entities.Patient) PatientResponse {
	return PatientResponse{
		ID:               p.ID,
		Birthday:         p.Birthday,
		PatientCondition: p.PatientCondition,
		AuditResponse:    ToAuditResponse(p.Audit),
	}
}

func ToPatientResponses(patients []*entities.Patient) []PatientResponse {
	return mapAll(patients, ToPatientResponse)
}
