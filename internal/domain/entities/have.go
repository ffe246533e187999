package entities

import "github.com/fatec/pi-back/internal/domain/valueobjects"

// Have vincula um paciente a um cuidador em um período
// EndDate nulo indica vínculo em andamento
type Have struct {
	ID          int64
	PatientID   int64
	CaregiverID int64
	StartDate   valueobjects.Date
	EndDate     *valueobjects.Date
	Audit
}

// IsOngoing indica se o vínculo não tem data de término
func (h *Have) IsOngoing() bool {
	return h.EndDate == nil
}
