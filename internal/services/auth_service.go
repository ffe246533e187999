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

// Principal é a identidade autenticada anexada à requisição
type Principal struct {
	UserID    int64
	Email     string
	Name      string
	Authority string
}

// AuthService cuida de cadastro, login e resolução de tokens
type AuthService struct {
	base
	roleRepo repositories.RoleRepository
	hasher   ports.PasswordHasher
	tokens   ports.TokenIssuer
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	userRepo repositories.UserRepository,
	roleRepo repositories.RoleRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *AuthService {
	return &AuthService{
		base:     newBase(userRepo, uow, logger),
		roleRepo: roleRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

// RegisterInput representa os dados de cadastro de um usuário
type RegisterInput struct {
	Email         string
	Password      string
	Name          string
	RoleID        int64
	CreatorUserID *int64
}

// Register cadastra um novo usuário com senha em bcrypt
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*entities.User, error) {
	s.logger.Info("registering user", "email", input.Email, "role_id", input.RoleID)

	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, errors.InvalidInput("email", "validation.email")
	}
	if err := requireNotBlank("name", input.Name); err != nil {
		return nil, err
	}
	if err := validatePassword(input.Password); err != nil {
		return nil, err
	}

	var user *entities.User
	err = s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.users.FindByEmail(ctx, email.String())
		if err != nil {
			return err
		}
		if existing != nil {
			return errors.ErrEmailAlreadyExists
		}

		role, err := find(ctx, s.roleRepo, errors.ResourceRole, input.RoleID)
		if err != nil {
			return err
		}

		hash, err := s.hasher.Hash(input.Password)
		if err != nil {
			return err
		}

		user = &entities.User{
			Email:        email,
			Name:         strings.TrimSpace(input.Name),
			PasswordHash: hash,
			RoleID:       role.ID,
		}
		now := s.now()
		user.CreatedAt = now
		user.UpdatedAt = now

		// criador é opcional no cadastro; id que não resolve é ignorado
		if input.CreatorUserID != nil {
			creator, err := s.users.FindByID(ctx, *input.CreatorUserID)
			if err != nil {
				return err
			}
			if creator != nil {
				user.MarkCreated(creator.ID, now)
			}
		}

		return s.users.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "user_id", user.ID)
	return user, nil
}

// Login valida as credenciais e emite um token de acesso
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil || !user.IsEnabled() || !s.hasher.Compare(user.PasswordHash, password) {
		s.logger.Warn("login rejected", "email", valueobjects.NormalizeEmail(email))
		return "", errors.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return "", err
	}
	s.logger.Info("user logged in", "user_id", user.ID)
	return token, nil
}

// Authenticate resolve o token em um Principal
// Retorna nil para tokens inválidos, expirados ou de usuários desabilitados (anônimo)
func (s *AuthService) Authenticate(ctx context.Context, token string) (*Principal, error) {
	subject := s.tokens.Validate(token)
	if subject == "" {
		return nil, nil
	}

	user, err := s.users.FindByEmail(ctx, subject)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsEnabled() {
		return nil, nil
	}

	role, err := s.roleRepo.FindByID(ctx, user.RoleID)
	if err != nil {
		return nil, err
	}
	authority := ""
	if role != nil {
		authority = role.Authority()
	}

	return &Principal{
		UserID:    user.ID,
		Email:     user.Email.String(),
		Name:      user.Name,
		Authority: authority,
	}, nil
}
