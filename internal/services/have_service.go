package services

import (
	"context"

	"github.com/fatec/pi-back/internal/domain/entities"
	"github.com/fatec/pi-back/internal/domain/errors"
	"github.com/fatec/pi-back/internal/domain/ports"
	"github.com/fatec/pi-back/internal/domain/repositories"
	"github.com/fatec/pi-back/internal/domain/valueobjects"
)

// HaveService contém a lógica de negócio para vínculos paciente/cuidador
type HaveService struct {
	base
	haveRepo      repositories.HaveRepository
	patientRepo   repositories.PatientRepository
	caregiverRepo repositories.CaregiverRepository
}

// NewHaveService cria um novo HaveService
func NewHaveService(
	haveRepo repositories.HaveRepository,
	patientRepo repositories.PatientRepository,
	caregiverRepo repositories.CaregiverRepository,
	userRepo repositories.UserRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *HaveService {
	return &HaveService{
		base:          newBase(userRepo, uow, logger),
		haveRepo:      haveRepo,
		patientRepo:   patientRepo,
		caregiverRepo: caregiverRepo,
	}
}

// HaveInput representa os dados de criação de um vínculo
type HaveInput struct {
	PatientID   int64
	CaregiverID int64
	StartDate   valueobjects.Date
	EndDate     *valueobjects.Date
}

// UpdateHaveInput representa uma alteração parcial de vínculo
type UpdateHaveInput struct {
	PatientID   *int64
	CaregiverID *int64
	StartDate   *valueobjects.Date
	EndDate     *valueobjects.Date
}

// ListHaves lista todos os vínculos
func (s *HaveService) ListHaves(ctx context.Context) ([]*entities.Have, error) {
	return s.haveRepo.FindAll(ctx)
}

// GetHave busca um vínculo por ID
func (s *HaveService) GetHave(ctx context.Context, id int64) (*entities.Have, error) {
	return find(ctx, s.haveRepo, errors.ResourceHave, id)
}

// CreateHave vincula um paciente a um cuidador
func (s *HaveService) CreateHave(ctx context.Context, input HaveInput, actorID int64) (*entities.Have, error) {
	s.logger.Info("creating have",
		"patient_id", input.PatientID,
		"caregiver_id", input.CaregiverID,
		"actor_id", actorID,
	)

	var have *entities.Have
	err := s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		actor, err := s.actor(ctx, actorID)
		if err != nil {
			return err
		}
		patient, err := find(ctx, s.patientRepo, errors.ResourcePatient, input.PatientID)
		if err != nil {
			return err
		}
		caregiver, err := find(ctx, s.caregiverRepo, errors.ResourceCaregiver, input.CaregiverID)
		if err != nil {
			return err
		}

		have = &entities.Have{
			PatientID:   patient.ID,
			CaregiverID: caregiver.ID,
			StartDate:   input.StartDate,
			EndDate:     input.EndDate,
		}
		have.MarkCreated(actor.ID, s.now())
		return s.haveRepo.Create(ctx, have)
	})
	if err != nil {
		return nil, err
	}
	return have, nil
}

// UpdateHave aplica uma alteração parcial ao vínculo
func (s *HaveService) UpdateHave(ctx context.Context, id int64, input UpdateHaveInput, actorID int64) (*entities.Have, error) {
	s.logger.Info("updating have", "have_id", id, "actor_id", actorID)

	var have *entities.Have
	err := s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		have, err = find(ctx, s.haveRepo, errors.ResourceHave, id)
		if err != nil {
			return err
		}
		actor, err := s.actor(ctx, actorID)
		if err != nil {
			return err
		}

		if input.PatientID != nil {
			patient, err := find(ctx, s.patientRepo, errors.ResourcePatient, *input.PatientID)
			if err != nil {
				return err
			}
			have.PatientID = patient.ID
		}
		if input.CaregiverID != nil {
			caregiver, err := find(ctx, s.caregiverRepo, errors.ResourceCaregiver, *input.CaregiverID)
			if err != nil {
				return err
			}
			have.CaregiverID = caregiver.ID
		}
		if input.StartDate != nil {
			have.StartDate = *input.StartDate
		}
		if input.EndDate != nil {
			have.EndDate = input.EndDate
		}

		have.MarkUpdated(actor.ID, s.now())
		return s.haveRepo.Update(ctx, have)
	})
	if err != nil {
		return nil, err
	}
	return have, nil
}

// ToggleDeleted alterna o soft delete do vínculo
func (s *HaveService) ToggleDeleted(ctx context.Context, id int64, actorID int64) error {
	s.logger.Info("toggling have deleted flag", "have_id", id, "actor_id", actorID)

	return s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		have, err := find(ctx, s.haveRepo, errors.ResourceHave, id)
		if err != nil {
			return err
		}
		actor, err := s.actor(ctx, actorID)
		if err != nil {
			return err
		}
		have.ToggleDeleted()
		have.MarkUpdated(actor.ID, s.now())
		return s.haveRepo.Update(ctx, have)
	})
}
