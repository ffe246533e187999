package dto

import (
	"time"

	"github.com/fatec/pi-back/internal/domain/entities"
)

// ActorRequest carrega o usuário responsável por uma mutação
// Ausente, o handler usa o usuário autenticado
type ActorRequest struct {
	UserID *int64 `json:"userId"`
}

// AuditResponse expõe os campos de auditoria de uma entidade
type AuditResponse struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	CreatedBy *int64    `json:"createdBy"`
	UpdatedBy *int64    `json:"updatedBy"`
	Deleted   bool      `json:"deleted"`
}

// ToAuditResponse converte os campos de auditoria
func ToAuditResponse(a entities.Audit) AuditResponse {
	return AuditResponse{
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
		CreatedBy: a.CreatedBy,
		UpdatedBy: a.UpdatedBy,
		Deleted:   a.Deleted,
	}
}

// mapAll converte uma lista de entidades com a função de resposta informada
func mapAll[E any, R any](items []*E, convert func(*E) R) []R {
	responses := make([]R, len(items))
	for i, item := range items {
		responses[i] = convert(item)
	}
	return responses
}
