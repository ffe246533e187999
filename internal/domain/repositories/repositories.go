package repositories

import (
	"context"

	"github.com/fatec/pi-back/internal/domain/entities"
)

// Repository define as operações de persistência comuns às entidades
// FindByID retorna (nil, nil) quando o registro não existe.
// Leituras não filtram registros com soft delete.
type Repository[T any] interface {
	FindAll(ctx context.Context) ([]*T, error)
	FindByID(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, entity *T) error
	Update(ctx context.Context, entity *T) error
}

// UserRepository define a interface para persistência de usuários
type UserRepository interface {
	Repository[entities.User]
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
}

type (
	RoleRepository       = Repository[entities.Role]
	PatientRepository    = Repository[entities.Patient]
	CaregiverRepository  = Repository[entities.Caregiver]
	HaveRepository       = Repository[entities.Have]
	MedicationRepository = Repository[entities.Medication]
	RelationMPRepository = Repository[entities.RelationMP]
	HistoryRepository    = Repository[entities.History]
)

// Set reúne os repositórios de um mesmo backend de armazenamento
type Set struct {
	Users       UserRepository
	Roles       RoleRepository
	Patients    PatientRepository
	Caregivers  CaregiverRepository
	Haves       HaveRepository
	Medications MedicationRepository
	Relations   RelationMPRepository
	Histories   HistoryRepository
}
