package entities

import "time"

// Audit agrupa os campos de auditoria e soft delete comuns às entidades mutáveis
type Audit struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	CreatedBy *int64
	UpdatedBy *int64
	Deleted   bool
}

// MarkCreated carimba criação e atualização com o mesmo ator e instante
// Deve ser chamado uma única vez, antes do primeiro save
func (a *Audit) MarkCreated(actorID int64, now time.Time) {
	a.CreatedAt = now
	a.CreatedBy = &actorID
	a.MarkUpdated(actorID, now)
}

// MarkUpdated carimba o ator e o instante da última alteração
func (a *Audit) MarkUpdated(actorID int64, now time.Time) {
	a.UpdatedAt = now
	a.UpdatedBy = &actorID
}

// ToggleDeleted inverte o flag de soft delete; duas chamadas restauram o estado original
func (a *Audit) ToggleDeleted() {
	a.Deleted = !a.Deleted
}
