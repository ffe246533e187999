package ports

import "github.com/fatec/pi-back/internal/domain/entities"

// PasswordHasher abstrai o hash adaptativo de senhas (bcrypt)
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

// TokenIssuer emite e valida tokens de acesso
type TokenIssuer interface {
	Generate(user *entities.User) (string, error)
	// Validate retorna o subject (email) ou "" se o token for inválido ou expirado
	Validate(token string) string
}
