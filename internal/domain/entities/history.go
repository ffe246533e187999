package entities

import "time"

// History registra a administração (ou não) de uma prescrição
type History struct {
	ID           int64
	RelationMPID int64
	Taked        bool
	TakedAt      *time.Time
	Audit
}
