package dto

import (
	"github.com/fatec/pi-back/internal/domain/entities"
	"github.com/fatec/pi-back/internal/domain/valueobjects"
	"github.com/fatec/pi-back/internal/services"
)

// CreateRelationMPRequest cria uma prescrição; totalDosage é sempre calculado
type CreateRelationMPRequest struct {
	MedicationID   int64              `json:"medication" binding:"required"`
	PatientID      int64              `json:"patient" binding:"required"`
	Dosage         *int               `json:"dosage" binding:"required"`
	FrequencyValue *int               `json:"frequencyValue" binding:"required"`
	FrequencyUnit  string             `json:"frequencyUnit" binding:"required,frequency_unit" enums:"HOURS,DAYS,WEEKS"`
	StartDate      *valueobjects.Date `json:"startDate" binding:"required" swaggertype:"string" example:"2024-01-01"`
	EndDate        *valueobjects.Date `json:"endDate" binding:"required" swaggertype:"string" example:"2024-01-10"`
	UserID         *int64             `json:"userId"`
}

// UpdateRelationMPRequest representa uma alteração parcial de prescrição
type UpdateRelationMPRequest struct {
	MedicationID   *int64             `json:"medication"`
	PatientID      *int64             `json:"patient"`
	Dosage         *int               `json:"dosage"`
	FrequencyValue *int               `json:"frequencyValue"`
	FrequencyUnit  *string            `json:"frequencyUnit" binding:"omitempty,frequency_unit" enums:"HOURS,DAYS,WEEKS"`
	StartDate      *valueobjects.Date `json:"startDate" swaggertype:"string"`
	EndDate        *valueobjects.Date `json:"endDate" swaggertype:"string"`
	UserID         *int64             `json:"userId"`
}

func (r CreateRelationMPRequest) ToInput() services.RelationMPInput {
	return services.RelationMPInput{
		MedicationID:   r.MedicationID,
		PatientID:      r.PatientID,
		Dosage:         *r.Dosage,
		FrequencyValue: *r.FrequencyValue,
		FrequencyUnit:  entities.FrequencyUnit(r.FrequencyUnit),
		StartDate:      *r.StartDate,
		EndDate:        *r.EndDate,
	}
}

func (r UpdateRelationMPRequest) ToInput() services.UpdateRelationMPInput {
	input := services.UpdateRelationMPInput{
		MedicationID:   r.MedicationID,
		PatientID:      r.PatientID,
		Dosage:         r.Dosage,
		FrequencyValue: r.FrequencyValue,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
	}
	if r.FrequencyUnit != nil {
		unit := entities.FrequencyUnit(*r.FrequencyUnit)
		input.FrequencyUnit = &unit
	}
	return input
}

// RelationMPResponse representa a resposta de uma prescrição
type RelationMPResponse struct {
	ID             int64             `json:"id"`
	MedicationID   int64             `json:"medication"`
	PatientID      int64             `json:"patient"`
	Dosage         int               `json:"dosage"`
	FrequencyValue int               `json:"frequencyValue"`
	FrequencyUnit  string            `json:"frequencyUnit"`
	StartDate      valueobjects.Date `json:"startDate" swaggertype:"string"`
	EndDate        valueobjects.Date `json:"endDate" swaggertype:"string"`
	TotalDosage    int               `json:"totalDosage"`
	AuditResponse
}

func ToRelationMPResponse(r *entities.RelationMP) RelationMPResponse {
	return RelationMPResponse{
		ID:             r.ID,
		MedicationID:   r.MedicationID,
		PatientID:      r.PatientID,
		Dosage:         r.Dosage,
		FrequencyValue: r.FrequencyValue,
		FrequencyUnit:  string(r.FrequencyUnit),
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		TotalDosage:    r.TotalDosage,
		AuditResponse:  ToAuditResponse(r.Audit),
	}
}

func ToRelationMPResponses(relations []*entities.RelationMP) []RelationMPResponse {
	return mapAll(relations, ToRelationMPResponse)
}
