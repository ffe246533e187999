package dto

import (
	"github.com/fatec/pi-back/internal/domain/entities"
	"github.com/fatec/pi-back/internal/domain/valueobjects"
	"github.com/fatec/pi-back/internal/services"
)

// CreateHaveRequest vincula um paciente a um cuidador
type CreateHaveRequest struct {
	PatientID   int64              `json:"patient" binding:"required"`
	CaregiverID int64              `json:"caregiver" binding:"required"`
	StartDate   *valueobjects.Date `json:"startDate" binding:"required" swaggertype:"string" example:"2024-01-01"`
	EndDate     *valueobjects.Date `json:"endDate" swaggertype:"string" example:"2024-06-30"`
	UserID      *int64             `json:"userId"`
}

// UpdateHaveRequest representa uma alteração parcial de vínculo
type UpdateHaveRequest struct {
	PatientID   *int64             `json:"patient"`
	CaregiverID *int64             `json:"caregiver"`
	StartDate   *valueobjects.Date `json:"startDate" swaggertype:"string"`
	EndDate     *valueobjects.Date `json:"endDate" swaggertype:"string"`
	UserID      *int64             `json:"userId"`
}

func (r CreateHaveRequest) ToInput() services.HaveInput {
	return services.HaveInput{
		PatientID:   r.PatientID,
		CaregiverID: r.CaregiverID,
		StartDate:   *r.StartDate,
		EndDate:     r.EndDate,
	}
}

func (r UpdateHaveRequest) ToInput() services.UpdateHaveInput {
	return services.UpdateHaveInput{
		PatientID:   r.PatientID,
		CaregiverID: r.CaregiverID,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
	}
}

// HaveResponse representa a resposta de um vínculo
type HaveResponse struct {
	ID          int64              `json:"id"`
	PatientID   int64              `json:"patient"`
	CaregiverID int64              `json:"caregiver"`
	StartDate   valueobjects.Date  `json:"startDate" swaggertype:"string"`
	EndDate     *valueobjects.Date `json:"endDate" swaggertype:"string"`
	AuditResponse
}

func ToHaveResponse(h *entities.Have) HaveResponse {
	return HaveResponse{
		ID:            h.ID,
		PatientID:     h.PatientID,
		CaregiverID:   h.CaregiverID,
		StartDate:     h.StartDate,
		EndDate:       h.EndDate,
		AuditResponse: ToAuditResponse(h.Audit),
	}
}

func ToHaveResponses(haves []*entities.Have) []HaveResponse {
	return mapAll(haves, ToHaveResponse)
}
