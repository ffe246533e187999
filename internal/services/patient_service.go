package services

import (
	"context"

	"github.com/fatec/pi-back/internal/domain/entities"
	"github.com/fatec/pi-back/internal/domain/errors"
	"github.com/fatec/pi-back/internal/domain/ports"
	"github.com/fatec/pi-back/internal/domain/repositories"
	"github.com/fatec/pi-back/internal/domain/valueobjects"
)

// PatientService contém a lógica de negócio para pacientes
type PatientService struct {
	base
	patientRepo repositories.PatientRepository
}

// NewPatientService cria um novo PatientService
func NewPatientService(
	patientRepo repositories.PatientRepository,
	userRepo repositories.UserRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *PatientService {
	return &PatientService{
		base:        newBase(userRepo, uow, logger),
		patientRepo: patientRepo,
	}
}

// PatientInput representa os dados de criação de um paciente
// UserID é o usuário vinculado, cujo ID o paciente herda
type PatientInput struct {
	UserID           int64
	Birthday         *valueobjects.Date
	PatientCondition string
}

// UpdatePatientInput representa uma alteração parcial de paciente
type UpdatePatientInput struct {
	Birthday         *valueobjects.Date
	PatientCondition *string
}

// ListPatients lista todos os pacientes
func (s *PatientService) ListPatients(ctx context.Context) ([]*entities.Patient, error) {
	return s.patientRepo.FindAll(ctx)
}

// GetPatient busca um paciente por ID
func (s *PatientService) GetPatient(ctx context.Context, id int64) (*entities.Patient, error) {
	return find(ctx, s.patientRepo, errors.ResourcePatient, id)
}

// CreatePatient cria o perfil de paciente de um usuário
func (s *PatientService) CreatePatient(ctx context.Context, input PatientInput, actorID int64) (*entities.Patient, error) {
	s.logger.Info("creating patient", "user_id", input.UserID, "actor_id", actorID)

	var patient *entities.Patient
	err := s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		actor, err := s.actor(ctx, actorID)
		if err != nil {
			return err
		}
		user, err := findUser(ctx, s.users, input.UserID)
		if err != nil {
			return err
		}

		existing, err := s.patientRepo.FindByID(ctx, user.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			return errors.ErrAlreadyExists
		}

		patient = &entities.Patient{
			ID:               user.ID,
			Birthday:         input.Birthday,
			PatientCondition: input.PatientCondition,
		}
		patient.MarkCreated(actor.ID, s.now())
		return s.patientRepo.Create(ctx, patient)
	})
	if err != nil {
		return nil, err
	}
	return patient, nil
}

// UpdatePatient aplica uma alteração parcial ao paciente
func (s *PatientService) UpdatePatient(ctx context.Context, id int64, input UpdatePatientInput, actorID int64) (*entities.Patient, error) {
	s.logger.Info("updating patient", "patient_id", id, "actor_id", actorID)

	var patient *entities.Patient
	err := s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		patient, err = find(ctx, s.patientRepo, errors.ResourcePatient, id)
		if err != nil {
			return err
		}
		actor, err := s.actor(ctx, actorID)
		if err != nil {
			return err
		}
		if input.Birthday != nil {
			patient.Birthday = input.Birthday
		}
		if input.PatientCondition != nil {
			patient.PatientCondition = *input.PatientCondition
		}
		patient.MarkUpdated(actor.ID, s.now())
		return s.patientRepo.Update(ctx, patient)
	})
	if err != nil {
		return nil, err
	}
	return patient, nil
}

// ToggleDeleted alterna o soft delete do paciente
func (s *PatientService) ToggleDeleted(ctx context.Context, id int64, actorID int64) error {
	s.logger.Info("toggling patient deleted flag", "patient_id", id, "actor_id", actorID)

	return s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		patient, err := find(ctx, s.patientRepo, errors.ResourcePatient, id)
		if err != nil {
			return err
		}
		actor, err := s.actor(ctx, actorID)
		if err != nil {
			return err
		}
		patient.ToggleDeleted()
		patient.MarkUpdated(actor.ID, s.now())
		return s.patientRepo.Update(ctx, patient)
	})
}
