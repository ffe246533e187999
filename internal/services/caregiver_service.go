package services

import (
	"context"

	"github.com/fatec/pi-back/internal/domain/entities"
	"github.com/fatec/pi-back/internal/domain/errors"
	"github.com/fatec/pi-back/internal/domain/ports"
	"github.com/fatec/pi-back/internal/domain/repositories"
)

// CaregiverService contém a lógica de negócio para cuidadores
type CaregiverService struct {
	base
	caregiverRepo repositories.CaregiverRepository
}

// NewCaregiverService cria um novo CaregiverService
func NewCaregiverService(
	caregiverRepo repositories.CaregiverRepository,
	userRepo repositories.UserRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *CaregiverService {
	return &CaregiverService{
		base:          newBase(userRepo, uow, logger),
		caregiverRepo: caregiverRepo,
	}
}

// CaregiverInput representa os dados de criação de um cuidador
type CaregiverInput struct {
	UserID   int64
	Relation string
}

// UpdateCaregiverInput representa uma alteração parcial de cuidador
type UpdateCaregiverInput struct {
	Relation *string
}

// ListCaregivers lista todos os cuidadores
func (s *CaregiverService) ListCaregivers(ctx context.Context) ([]*entities.Caregiver, error) {
	return s.caregiverRepo.FindAll(ctx)
}

// GetCaregiver busca um cuidador por ID
func (s *CaregiverService) GetCaregiver(ctx context.Context, id int64) (*entities.Caregiver, error) {
	return find(ctx, s.caregiverRepo, errors.ResourceCaregiver, id)
}

// CreateCaregiver cria o perfil de cuidador de um usuário
func (s *CaregiverService) CreateCaregiver(ctx context.Context, input CaregiverInput, actorID int64) (*entities.Caregiver, error) {
	s.logger.Info("creating caregiver", "user_id", input.UserID, "actor_id", actorID)

	if err := requireNotBlank("relation", input.Relation); err != nil {
		return nil, err
	}

	var caregiver *entities.Caregiver
	err := s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		actor, err := s.actor(ctx, actorID)
		if err != nil {
			return err
		}
		user, err := findUser(ctx, s.users, input.UserID)
		if err != nil {
			return err
		}

		existing, err := s.caregiverRepo.FindByID(ctx, user.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			return errors.ErrAlreadyExists
		}

		caregiver = &entities.Caregiver{ID: user.ID, Relation: input.Relation}
		caregiver.MarkCreated(actor.ID, s.now())
		return s.caregiverRepo.Create(ctx, caregiver)
	})
	if err != nil {
		return nil, err
	}
	return caregiver, nil
}

// UpdateCaregiver aplica uma alteração parcial ao cuidador
func (s *CaregiverService) UpdateCaregiver(ctx context.Context, id int64, input UpdateCaregiverInput, actorID int64) (*entities.Caregiver, error) {
	s.logger.Info("updating caregiver", "caregiver_id", id, "actor_id", actorID)

	var caregiver *entities.Caregiver
	err := s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		caregiver, err = find(ctx, s.caregiverRepo, errors.ResourceCaregiver, id)
		if err != nil {
			return err
		}
		actor, err := s.actor(ctx, actorID)
		if err != nil {
			return err
		}
		if input.Relation != nil {
			if err := requireNotBlank("relation", *input.Relation); err != nil {
				return err
			}
			caregiver.Relation = *input.Relation
		}
		caregiver.MarkUpdated(actor.ID, s.now())
		return s.caregiverRepo.Update(ctx, caregiver)
	})
	if err != nil {
		return nil, err
	}
	return caregiver, nil
}

// ToggleDeleted alterna o soft delete do cuidador
func (s *CaregiverService) ToggleDeleted(ctx context.Context, id int64, actorID int64) error {
	s.logger.Info("toggling caregiver deleted flag", "caregiver_id", id, "actor_id", actorID)

	return s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		caregiver, err := find(ctx, s.caregiverRepo, errors.ResourceCaregiver, id)
		if err != nil {
			return err
		}
		actor, err := s.actor(ctx, actorID)
		if err != nil {
			return err
		}
		caregiver.ToggleDeleted()
		caregiver.MarkUpdated(actor.ID, s.now())
		return s.caregiverRepo.Update(ctx, caregiver)
	})
}
