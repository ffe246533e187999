package services

import (
	"context"

	"github.com/fatec/pi-back/internal/domain/dosage"
	"github.com/fatec/pi-back/internal/domain/entities"
	"github.com/fatec/pi-back/internal/domain/errors"
	"github.com/fatec/pi-back/internal/domain/ports"
	"github.com/fatec/pi-back/internal/domain/repositories"
	"github.com/fatec/pi-back/internal/domain/valueobjects"
)

// RelationMPService contém a lógica de negócio para prescrições (medicamento x paciente)
type RelationMPService struct {
	base
	relationRepo   repositories.RelationMPRepository
	medicationRepo repositories.MedicationRepository
	patientRepo    repositories.PatientRepository
}

// NewRelationMPService cria um novo RelationMPService
func NewRelationMPService(
	relationRepo repositories.RelationMPRepository,
	medicationRepo repositories.MedicationRepository,
	patientRepo repositories.PatientRepository,
	userRepo repositories.UserRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *RelationMPService {
	return &RelationMPService{
		base:           newBase(userRepo, uow, logger),
		relationRepo:   relationRepo,
		medicationRepo: medicationRepo,
		patientRepo:    patientRepo,
	}
}

// RelationMPInput representa os dados de criação de uma prescrição
type RelationMPInput struct {
	MedicationID   int64
	PatientID      int64
	Dosage         int
	FrequencyValue int
	FrequencyUnit  entities.FrequencyUnit
	StartDate      valueobjects.Date
	EndDate        valueobjects.Date
}

// UpdateRelationMPInput representa uma alteração parcial de prescrição
type UpdateRelationMPInput struct {
	MedicationID   *int64
	PatientID      *int64
	Dosage         *int
	FrequencyValue *int
	FrequencyUnit  *entities.FrequencyUnit
	StartDate      *valueobjects.Date
	EndDate        *valueobjects.Date
}

// ListRelations lista todas as prescrições
func (s *RelationMPService) ListRelations(ctx context.Context) ([]*entities.RelationMP, error) {
	return s.relationRepo.FindAll(ctx)
}

// GetRelation busca uma prescrição por ID
func (s *RelationMPService) GetRelation(ctx context.Context, id int64) (*entities.RelationMP, error) {
	return find(ctx, s.relationRepo, errors.ResourceRelationMP, id)
}

// CreateRelation cria uma prescrição e calcula sua dosagem total
func (s *RelationMPService) CreateRelation(ctx context.Context, input RelationMPInput, actorID int64) (*entities.RelationMP, error) {
	s.logger.Info("creating relation_mp",
		"medication_id", input.MedicationID,
		"patient_id", input.PatientID,
		"actor_id", actorID,
	)

	var relation *entities.RelationMP
	err := s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		actor, err := s.actor(ctx, actorID)
		if err != nil {
			return err
		}
		medication, err := find(ctx, s.medicationRepo, errors.ResourceMedication, input.MedicationID)
		if err != nil {
			return err
		}
		patient, err := find(ctx, s.patientRepo, errors.ResourcePatient, input.PatientID)
		if err != nil {
			return err
		}

		relation = &entities.RelationMP{
			MedicationID:   medication.ID,
			PatientID:      patient.ID,
			Dosage:         input.Dosage,
			FrequencyValue: input.FrequencyValue,
			FrequencyUnit:  input.FrequencyUnit,
			StartDate:      input.StartDate,
			EndDate:        input.EndDate,
		}
		if err := dosage.Apply(relation); err != nil {
			return err
		}

		relation.MarkCreated(actor.ID, s.now())
		return s.relationRepo.Create(ctx, relation)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("relation_mp total dosage computed", "relation_id", relation.ID, "total", relation.TotalDosage)
	return relation, nil
}

// UpdateRelation aplica uma alteração parcial e recalcula a dosagem total
func (s *RelationMPService) UpdateRelation(ctx context.Context, id int64, input UpdateRelationMPInput, actorID int64) (*entities.RelationMP, error) {
	s.logger.Info("updating relation_mp", "relation_id", id, "actor_id", actorID)

	var relation *entities.RelationMP
	err := s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		relation, err = find(ctx, s.relationRepo, errors.ResourceRelationMP, id)
		if err != nil {
			return err
		}
		actor, err := s.actor(ctx, actorID)
		if err != nil {
			return err
		}

		if input.MedicationID != nil {
			medication, err := find(ctx, s.medicationRepo, errors.ResourceMedication, *input.MedicationID)
			if err != nil {
				return err
			}
			relation.MedicationID = medication.ID
		}
		if input.PatientID != nil {
			patient, err := find(ctx, s.patientRepo, errors.ResourcePatient, *input.PatientID)
			if err != nil {
				return err
			}
			relation.PatientID = patient.ID
		}
		if input.Dosage != nil {
			relation.Dosage = *input.Dosage
		}
		if input.FrequencyValue != nil {
			relation.FrequencyValue = *input.FrequencyValue
		}
		if input.FrequencyUnit != nil {
			relation.FrequencyUnit = *input.FrequencyUnit
		}
		if input.StartDate != nil {
			relation.StartDate = *input.StartDate
		}
		if input.EndDate != nil {
			relation.EndDate = *input.EndDate
		}

		// total sempre reflete os valores atuais, mesmo que nenhum campo do cálculo mude
		if err := dosage.Apply(relation); err != nil {
			return err
		}

		relation.MarkUpdated(actor.ID, s.now())
		return s.relationRepo.Update(ctx, relation)
	})
	if err != nil {
		return nil, err
	}
	return relation, nil
}

// ToggleDeleted alterna o soft delete da prescrição
func (s *RelationMPService) ToggleDeleted(ctx context.Context, id int64, actorID int64) error {
	s.logger.Info("toggling relation_mp deleted flag", "relation_id", id, "actor_id", actorID)

	return s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		relation, err := find(ctx, s.relationRepo, errors.ResourceRelationMP, id)
		if err != nil {
			return err
		}
		actor, err := s.actor(ctx, actorID)
		if err != nil {
			return err
		}
		relation.ToggleDeleted()
		relation.MarkUpdated(actor.ID, s.now())
		return s.relationRepo.Update(ctx, relation)
	})
}
