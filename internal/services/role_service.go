package services

import (
	"context"
	"strings"
	"time"

	"github.com/fatec/pi-back/internal/domain/entities"
	"github.com/fatec/pi-back/internal/domain/errors"
	"github.com/fatec/pi-back/internal/domain/ports"
	"github.com/fatec/pi-back/internal/domain/repositories"
)

// RoleService contém a lógica de negócio para papéis
// Papéis não carregam ator, por isso não dependem do repositório de usuários
type RoleService struct {
	roleRepo repositories.RoleRepository
	uow      ports.UnitOfWork
	logger   ports.Logger
	now      func() time.Time
}

// NewRoleService cria um novo RoleService
func NewRoleService(roleRepo repositories.RoleRepository, uow ports.UnitOfWork, logger ports.Logger) *RoleService {
	return &RoleService{
		roleRepo: roleRepo,
		uow:      uow,
		logger:   logger,
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// RoleInput representa os dados de criação de um papel
type RoleInput struct {
	Name        string
	Description string
}

// UpdateRoleInput representa uma alteração parcial de papel
type UpdateRoleInput struct {
	Name        *string
	Description *string
}

// ListRoles lista todos os papéis
func (s *RoleService) ListRoles(ctx context.Context) ([]*entities.Role, error) {
	return s.roleRepo.FindAll(ctx)
}

// GetRole busca um papel por ID
func (s *RoleService) GetRole(ctx context.Context, id int64) (*entities.Role, error) {
	return find(ctx, s.roleRepo, errors.ResourceRole, id)
}

// CreateRole cria um novo papel
func (s *RoleService) CreateRole(ctx context.Context, input RoleInput) (*entities.Role, error) {
	s.logger.Info("creating role", "name", input.Name)

	if err := requireNotBlank("name", input.Name); err != nil {
		return nil, err
	}

	now := s.now()
	role := &entities.Role{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err := s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		return s.roleRepo.Create(ctx, role)
	})
	if err != nil {
		return nil, err
	}
	return role, nil
}

// UpdateRole aplica uma alteração parcial ao papel
func (s *RoleService) UpdateRole(ctx context.Context, id int64, input UpdateRoleInput) (*entities.Role, error) {
	s.logger.Info("updating role", "role_id", id)

	var role *entities.Role
	err := s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		role, err = find(ctx, s.roleRepo, errors.ResourceRole, id)
		if err != nil {
			return err
		}
		if input.Name != nil {
			if err := requireNotBlank("name", *input.Name); err != nil {
				return err
			}
			role.Name = strings.TrimSpace(*input.Name)
		}
		if input.Description != nil {
			role.Description = *input.Description
		}
		role.UpdatedAt = s.now()
		return s.roleRepo.Update(ctx, role)
	})
	if err != nil {
		return nil, err
	}
	return role, nil
}

// ToggleDeleted alterna o soft delete do papel
func (s *RoleService) ToggleDeleted(ctx context.Context, id int64) error {
	s.logger.Info("toggling role deleted flag", "role_id", id)

	return s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		role, err := find(ctx, s.roleRepo, errors.ResourceRole, id)
		if err != nil {
			return err
		}
		role.ToggleDeleted()
		role.UpdatedAt = s.now()
		return s.roleRepo.Update(ctx, role)
	})
}
