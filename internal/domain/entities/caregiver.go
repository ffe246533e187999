package entities

// Caregiver é o perfil de cuidador de um usuário (1:1, compartilha o ID do usuário)
// Relation descreve o vínculo com o paciente (ex: pai, responsável legal)
type Caregiver struct {
	ID       int64
	Relation string
	Audit
}
