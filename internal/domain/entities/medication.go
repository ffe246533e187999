package entities

// Medication representa um medicamento cadastrado
type Medication struct {
	ID                 int64
	Name               string
	MedicationFunction string
	Audit
}
