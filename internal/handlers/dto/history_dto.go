package dto

import (
	"time"

	"github.com/fatec/pi-back/internal/domain/entities"
	"github.com/fatec/pi-back/internal/services"
)

// CreateHistoryRequest registra a administração de uma prescrição
type CreateHistoryRequest struct {
	RelationMPID int64      `json:"relationMp" binding:"required"`
	Taked        bool       `json:"taked"`
	TakedAt      *time.Time `json:"takedAt"`
	UserID       *int64     `json:"userId"`
}

// UpdateHistoryRequest representa uma alteração parcial de histórico
type UpdateHistoryRequest struct {
	RelationMPID *int64     `json:"relationMp"`
	Taked        *bool      `json:"taked"`
	TakedAt      *time.Time `json:"takedAt"`
	UserID       *int64     `json:"userId"`
}

func (r CreateHistoryRequest) ToInput() services.HistoryInput {
	return services.HistoryInput{RelationMPID: r.RelationMPID, Taked: r.Taked, TakedAt: r.TakedAt}
}

func (r UpdateHistoryRequest) ToInput() services.UpdateHistoryInput {
	return services.UpdateHistoryInput{RelationMPID: r.RelationMPID, Taked: r.Taked, TakedAt: r.TakedAt}
}

// HistoryResponse representa a resposta de um registro de histórico
type HistoryResponse struct {
	ID           int64      `json:"id"`
	RelationMPID int64      `json:"relationMp"`
	Taked        bool       `json:"taked"`
	TakedAt      *time.Time `json:"takedAt"`
	AuditResponse
}

func ToHistoryResponse(h *entities.History) HistoryResponse {
	return HistoryResponse{
		ID:            h.ID,
		RelationMPID:  h.RelationMPID,
		Taked:         h.Taked,
		TakedAt:       h.TakedAt,
		AuditResponse: ToAuditResponse(h.Audit),
	}
}

func ToHistoryResponses(histories []*entities.History) []HistoryResponse {
	return mapAll(histories, ToHistoryResponse)
}
