package entities

import (
	"github.com/fatec/pi-back/internal/domain/valueobjects"
)

// User representa um usuário do sistema
type User struct {
	ID           int64
	Email        valueobjects.Email
	Name         string
	PasswordHash string
	RoleID       int64
	Audit
}

// IsEnabled indica se o usuário pode autenticar; usuários removidos ficam desabilitados
func (u *User) IsEnabled() bool {
	return !u.Deleted
}
