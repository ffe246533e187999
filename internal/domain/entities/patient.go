package entities

import "github.com/fatec/pi-back/internal/domain/valueobjects"

// Patient é o perfil de paciente de um usuário (1:1, compartilha o ID do usuário)
type Patient struct {
	ID               int64
	Birthday         *valueobjects.Date
	PatientCondition string
	Audit
}
