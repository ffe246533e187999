package services

import (
	"context"
	"strings"

	"github.com/fatec/pi-back/internal/domain/entities"
	"github.com/fatec/pi-back/internal/domain/errors"
	"github.com/fatec/pi-back/internal/domain/ports"
	"github.com/fatec/pi-back/internal/domain/repositories"
)

// MedicationService contém a lógica de negócio para medicamentos
type MedicationService struct {
	base
	medicationRepo repositories.MedicationRepository
}

// NewMedicationService cria um novo MedicationService
func NewMedicationService(
	medicationRepo repositories.MedicationRepository,
	userRepo repositories.UserRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *MedicationService {
	return &MedicationService{
		base:           newBase(userRepo, uow, logger),
		medicationRepo: medicationRepo,
	}
}

// MedicationInput representa os dados de criação de um medicamento
type MedicationInput struct {
	Name               string
	MedicationFunction string
}

// UpdateMedicationInput representa uma alteração parcial de medicamento
type UpdateMedicationInput struct {
	Name               *string
	MedicationFunction *string
}

// ListMedications lista todos os medicamentos
func (s *MedicationService) ListMedications(ctx context.Context) ([]*entities.Medication, error) {
	return s.medicationRepo.FindAll(ctx)
}

// GetMedication busca um medicamento por ID
func (s *MedicationService) GetMedication(ctx context.Context, id int64) (*entities.Medication, error) {
	return find(ctx, s.medicationRepo, errors.ResourceMedication, id)
}

// CreateMedication cadastra um medicamento
func (s *MedicationService) CreateMedication(ctx context.Context, input MedicationInput, actorID int64) (*entities.Medication, error) {
	s.logger.Info("creating medication", "name", input.Name, "actor_id", actorID)

	if err := requireNotBlank("name", input.Name); err != nil {
		return nil, err
	}

	var medication *entities.Medication
	err := s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		actor, err := s.actor(ctx, actorID)
		if err != nil {
			return err
		}
		medication = &entities.Medication{
			Name:               strings.TrimSpace(input.Name),
			MedicationFunction: input.MedicationFunction,
		}
		medication.MarkCreated(actor.ID, s.now())
		return s.medicationRepo.Create(ctx, medication)
	})
	if err != nil {
		return nil, err
	}
	return medication, nil
}

// UpdateMedication aplica uma alteração parcial ao medicamento
func (s *MedicationService) UpdateMedication(ctx context.Context, id int64, input UpdateMedicationInput, actorID int64) (*entities.Medication, error) {
	s.logger.Info("updating medication", "medication_id", id, "actor_id", actorID)

	var medication *entities.Medication
	err := s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		medication, err = find(ctx, s.medicationRepo, errors.ResourceMedication, id)
		if err != nil {
			return err
		}
		actor, err := s.actor(ctx, actorID)
		if err != nil {
			return err
		}
		if input.Name != nil {
			if err := requireNotBlank("name", *input.Name); err != nil {
				return err
			}
			medication.Name = strings.TrimSpace(*input.Name)
		}
		if input.MedicationFunction != nil {
			medication.MedicationFunction = *input.MedicationFunction
		}
		medication.MarkUpdated(actor.ID, s.now())
		return s.medicationRepo.Update(ctx, medication)
	})
	if err != nil {
		return nil, err
	}
	return medication, nil
}

// ToggleDeleted alterna o soft delete do medicamento
func (s *MedicationService) ToggleDeleted(ctx context.Context, id int64, actorID int64) error {
	s.logger.Info("toggling medication deleted flag", "medication_id", id, "actor_id", actorID)

	return s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		medication, err := find(ctx, s.medicationRepo, errors.ResourceMedication, id)
		if err != nil {
			return err
		}
		actor, err := s.actor(ctx, actorID)
		if err != nil {
			return err
		}
		medication.ToggleDeleted()
		medication.MarkUpdated(actor.ID, s.now())
		return s.medicationRepo.Update(ctx, medication)
	})
}
