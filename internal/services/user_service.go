package services

import (
	"context"
	"strings"

	"github.com/fatec/pi-back/internal/domain/entities"
	"github.com/fatec/pi-back/internal/domain/errors"
	"github.com/fatec/pi-back/internal/domain/ports"
	"github.com/fatec/pi-back/internal/domain/repositories"
	"github.com/fatec/pi-back/internal/domain/valueobjects"
)

// UserService contém a lógica de negócio para usuários
type UserService struct {
	base
	roleRepo repositories.RoleRepository
	hasher   ports.PasswordHasher
}

// NewUserService cria um novo UserService
func NewUserService(
	userRepo repositories.UserRepository,
	roleRepo repositories.RoleRepository,
	hasher ports.PasswordHasher,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *UserService {
	return &UserService{
		base:     newBase(userRepo, uow, logger),
		roleRepo: roleRepo,
		hasher:   hasher,
	}
}

// UpdateUserInput representa uma alteração parcial de usuário (campos nil são ignorados)
type UpdateUserInput struct {
	Email    *string
	Name     *string
	Password *string
	RoleID   *int64
}

// ListUsers lista todos os usuários, inclusive os removidos
func (s *UserService) ListUsers(ctx context.Context) ([]*entities.User, error) {
	return s.users.FindAll(ctx)
}

// GetUser busca um usuário por ID
func (s *UserService) GetUser(ctx context.Context, id int64) (*entities.User, error) {
	return findUser(ctx, s.users, id)
}

// UpdateUser aplica uma alteração parcial ao usuário
func (s *UserService) UpdateUser(ctx context.Context, id int64, input UpdateUserInput, actorID int64) (*entities.User, error) {
	s.logger.Info("updating user", "user_id", id, "actor_id", actorID)

	var user *entities.User
	err := s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		user, err = findUser(ctx, s.users, id)
		if err != nil {
			return err
		}
		actor, err := s.actor(ctx, actorID)
		if err != nil {
			return err
		}

		if input.Email != nil {
			if err := s.changeEmail(ctx, user, *input.Email); err != nil {
				return err
			}
		}
		if input.Name != nil {
			if err := requireNotBlank("name", *input.Name); err != nil {
				return err
			}
			user.Name = strings.TrimSpace(*input.Name)
		}
		if input.Password != nil {
			if err := s.changePassword(user, *input.Password); err != nil {
				return err
			}
		}
		if input.RoleID != nil {
			role, err := find(ctx, s.roleRepo, errors.ResourceRole, *input.RoleID)
			if err != nil {
				return err
			}
			user.RoleID = role.ID
		}

		user.MarkUpdated(actor.ID, s.now())
		return s.users.Update(ctx, user)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UpdatePassword troca a senha do usuário
func (s *UserService) UpdatePassword(ctx context.Context, id int64, password string, actorID int64) error {
	s.logger.Info("updating user password", "user_id", id, "actor_id", actorID)

	return s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		user, err := findUser(ctx, s.users, id)
		if err != nil {
			return err
		}
		actor, err := s.actor(ctx, actorID)
		if err != nil {
			return err
		}
		if err := s.changePassword(user, password); err != nil {
			return err
		}
		user.MarkUpdated(actor.ID, s.now())
		return s.users.Update(ctx, user)
	})
}

// ToggleDeleted alterna o soft delete do usuário; usuários removidos não autenticam
func (s *UserService) ToggleDeleted(ctx context.Context, id int64, actorID int64) error {
	s.logger.Info("toggling user deleted flag", "user_id", id, "actor_id", actorID)

	return s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		user, err := findUser(ctx, s.users, id)
		if err != nil {
			return err
		}
		actor, err := s.actor(ctx, actorID)
		if err != nil {
			return err
		}
		user.ToggleDeleted()
		user.MarkUpdated(actor.ID, s.now())
		return s.users.Update(ctx, user)
	})
}

func (s *UserService) changeEmail(ctx context.Context, user *entities.User, raw string) error {
	if err := requireNotBlank("email", raw); err != nil {
		return err
	}
	email, err := valueobjects.NewEmail(raw)
	if err != nil {
		return errors.InvalidInput("email", "validation.email")
	}
	if email == user.Email {
		return nil
	}

	existing, err := s.users.FindByEmail(ctx, email.String())
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != user.ID {
		return errors.ErrEmailAlreadyExists
	}
	user.Email = email
	return nil
}

func (s *UserService) changePassword(user *entities.User, password string) error {
	if err := validatePassword(password); err != nil {
		return err
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return nil
}

func validatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return errors.InvalidInput("password", "validation.password_too_short")
	}
	if len(password) > MaxPasswordBytes {
		return errors.InvalidInput("password", "validation.password_too_long")
	}
	return nil
}
