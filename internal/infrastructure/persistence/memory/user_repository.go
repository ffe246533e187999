package memory

import (
	"context"

	"github.com/fatec/pi-back/internal/domain/entities"
	"github.com/fatec/pi-back/internal/domain/repositories"
	"github.com/fatec/pi-back/internal/domain/valueobjects"
)

type userRepo struct {
	*store[entities.User]
}

// NewUserRepository cria um UserRepository em memória
func NewUserRepository() repositories.UserRepository {
	return &userRepo{store: newStore(func(u *entities.User) *int64 { return &u.ID })}
}

// Create rejeita emails duplicados, como a constraint unique do banco
func (r *userRepo) Create(ctx context.Context, user *entities.User) error {
	existing, err := r.FindByEmail(ctx, user.Email.String())
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrAlreadyExists
	}
	return r.store.Create(ctx, user)
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	email = valueobjects.NormalizeEmail(email)

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.byID {
		if u.Email.String() == email {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}
