package services

import (
	"github.com/fatec/pi-back/internal/domain/ports"
	"github.com/fatec/pi-back/internal/domain/repositories"
)

// Services agrupa os serviços expostos pela API
type Services struct {
	Auth        *AuthService
	Users       *UserService
	Roles       *RoleService
	Patients    *PatientService
	Caregivers  *CaregiverService
	Haves       *HaveService
	Medications *MedicationService
	Relations   *RelationMPService
	Histories   *HistoryService
}

// New monta todos os serviços sobre o mesmo conjunto de repositórios
func New(
	repos repositories.Set,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *Services {
	return &Services{
		Auth:        NewAuthService(repos.Users, repos.Roles, hasher, tokens, uow, logger),
		Users:       NewUserService(repos.Users, repos.Roles, hasher, uow, logger),
		Roles:       NewRoleService(repos.Roles, uow, logger),
		Patients:    NewPatientService(repos.Patients, repos.Users, uow, logger),
		Caregivers:  NewCaregiverService(repos.Caregivers, repos.Users, uow, logger),
		Haves:       NewHaveService(repos.Haves, repos.Patients, repos.Caregivers, repos.Users, uow, logger),
		Medications: NewMedicationService(repos.Medications, repos.Users, uow, logger),
		Relations:   NewRelationMPService(repos.Relations, repos.Medications, repos.Patients, repos.Users, uow, logger),
		Histories:   NewHistoryService(repos.Histories, repos.Relations, repos.Users, uow, logger),
	}
}
