package entities

import (
	"github.com/fatec/pi-back/internal/domain/valueobjects"
)

// FrequencyUnit é a granularidade em que uma dose se repete
type FrequencyUnit string

const (
	FrequencyHours FrequencyUnit = "HOURS"
	FrequencyDays  FrequencyUnit = "DAYS"
	FrequencyWeeks FrequencyUnit = "WEEKS"
)

// IsValid verifica se a unidade é conhecida
func (u FrequencyUnit) IsValid() bool {
	switch u {
	case FrequencyHours, FrequencyDays, FrequencyWeeks:
		return true
	}
	return false
}

// RelationMP é a prescrição que liga um medicamento a um paciente
// TotalDosage é derivado e recalculado a cada criação/alteração
type RelationMP struct {
	ID             int64
	MedicationID   int64
	PatientID      int64
	Dosage         int
	FrequencyValue int
	FrequencyUnit  FrequencyUnit
	StartDate      valueobjects.Date
	EndDate        valueobjects.Date
	TotalDosage    int
	Audit
}
