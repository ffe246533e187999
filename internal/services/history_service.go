package services

import (
	"context"
	"time"

	"github.com/fatec/pi-back/internal/domain/entities"
	"github.com/fatec/pi-back/internal/domain/errors"
	"github.com/fatec/pi-back/internal/domain/ports"
	"github.com/fatec/pi-back/internal/domain/repositories"
)

// HistoryService contém a lógica de negócio para o histórico de administração
type HistoryService struct {
	base
	historyRepo  repositories.HistoryRepository
	relationRepo repositories.RelationMPRepository
}

// NewHistoryService cria um novo HistoryService
func NewHistoryService(
	historyRepo repositories.HistoryRepository,
	relationRepo repositories.RelationMPRepository,
	userRepo repositories.UserRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *HistoryService {
	return &HistoryService{
		base:         newBase(userRepo, uow, logger),
		historyRepo:  historyRepo,
		relationRepo: relationRepo,
	}
}

// HistoryInput representa os dados de criação de um registro de histórico
type HistoryInput struct {
	RelationMPID int64
	Taked        bool
	TakedAt      *time.Time
}

// UpdateHistoryInput representa uma alteração parcial de histórico
type UpdateHistoryInput struct {
	RelationMPID *int64
	Taked        *bool
	TakedAt      *time.Time
}

// ListHistories lista todos os registros de histórico
func (s *HistoryService) ListHistories(ctx context.Context) ([]*entities.History, error) {
	return s.historyRepo.FindAll(ctx)
}

// GetHistory busca um registro de histórico por ID
func (s *HistoryService) GetHistory(ctx context.Context, id int64) (*entities.History, error) {
	return find(ctx, s.historyRepo, errors.ResourceHistory, id)
}

// CreateHistory registra a administração de uma prescrição
func (s *HistoryService) CreateHistory(ctx context.Context, input HistoryInput, actorID int64) (*entities.History, error) {
	s.logger.Info("creating history", "relation_id", input.RelationMPID, "actor_id", actorID)

	var history *entities.History
	err := s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		actor, err := s.actor(ctx, actorID)
		if err != nil {
			return err
		}
		relation, err := find(ctx, s.relationRepo, errors.ResourceRelationMP, input.RelationMPID)
		if err != nil {
			return err
		}

		history = &entities.History{
			RelationMPID: relation.ID,
			Taked:        input.Taked,
			TakedAt:      input.TakedAt,
		}
		history.MarkCreated(actor.ID, s.now())
		return s.historyRepo.Create(ctx, history)
	})
	if err != nil {
		return nil, err
	}
	return history, nil
}

// UpdateHistory aplica uma alteração parcial ao histórico
func (s *HistoryService) UpdateHistory(ctx context.Context, id int64, input UpdateHistoryInput, actorID int64) (*entities.History, error) {
	s.logger.Info("updating history", "history_id", id, "actor_id", actorID)

	var history *entities.History
	err := s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		history, err = find(ctx, s.historyRepo, errors.ResourceHistory, id)
		if err != nil {
			return err
		}
		actor, err := s.actor(ctx, actorID)
		if err != nil {
			return err
		}
		if input.RelationMPID != nil {
			relation, err := find(ctx, s.relationRepo, errors.ResourceRelationMP, *input.RelationMPID)
			if err != nil {
				return err
			}
			history.RelationMPID = relation.ID
		}
		if input.Taked != nil {
			history.Taked = *input.Taked
		}
		if input.TakedAt != nil {
			history.TakedAt = input.TakedAt
		}
		history.MarkUpdated(actor.ID, s.now())
		return s.historyRepo.Update(ctx, history)
	})
	if err != nil {
		return nil, err
	}
	return history, nil
}

// ToggleDeleted alterna o soft delete do histórico
func (s *HistoryService) ToggleDeleted(ctx context.Context, id int64, actorID int64) error {
	s.logger.Info("toggling history deleted flag", "history_id", id, "actor_id", actorID)

	return s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		history, err := find(ctx, s.historyRepo, errors.ResourceHistory, id)
		if err != nil {
			return err
		}
		actor, err := s.actor(ctx, actorID)
		if err != nil {
			return err
		}
		history.ToggleDeleted()
		history.MarkUpdated(actor.ID, s.now())
		return s.historyRepo.Update(ctx, history)
	})
}
