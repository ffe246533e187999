package memory

import (
	"context"

	"github.com/fatec/pi-back/internal/domain/ports"
)

// UnitOfWork em memória: não há transação, as operações são aplicadas diretamente
type UnitOfWork struct{}

// NewUnitOfWork cria um UnitOfWork sem efeito
func NewUnitOfWork() ports.UnitOfWork {
	return UnitOfWork{}
}

func (UnitOfWork) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }
func (UnitOfWork) Commit(ctx context.Context) error                   { return nil }
func (UnitOfWork) Rollback(ctx context.Context) error                 { return nil }

func (UnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}
