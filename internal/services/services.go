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

const (
	// MinPasswordLength é o tamanho mínimo de senha aceito no cadastro e na alteração
	MinPasswordLength = 6
	// MaxPasswordBytes é o limite do bcrypt, contado em bytes e não em caracteres
	MaxPasswordBytes = 72
)

// base reúne as dependências comuns aos serviços de entidades auditáveis
type base struct {
	users  repositories.UserRepository
	uow    ports.UnitOfWork
	logger ports.Logger
	now    func() time.Time
}

func newBase(users repositories.UserRepository, uow ports.UnitOfWork, logger ports.Logger) base {
	return base{
		users:  users,
		uow:    uow,
		logger: logger,
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// actor resolve o usuário responsável pela mutação; ausência aborta a operação
func (b *base) actor(ctx context.Context, actorID int64) (*entities.User, error) {
	return findUser(ctx, b.users, actorID)
}

func findUser(ctx context.Context, users repositories.UserRepository, id int64) (*entities.User, error) {
	user, err := users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.NotFound(errors.ResourceUser, id)
	}
	return user, nil
}

// find busca uma entidade por ID, retornando NotFoundError se não existir
// Registros com soft delete são retornados normalmente
func find[T any](ctx context.Context, repo repositories.Repository[T], resource string, id int64) (*T, error) {
	entity, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, errors.NotFound(resource, id)
	}
	return entity, nil
}

// requireNotBlank valida campos de texto obrigatórios
func requireNotBlank(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.InvalidInput(field, "validation.blank")
	}
	return nil
}
