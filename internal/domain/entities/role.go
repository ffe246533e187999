package entities

import (
	"strings"
	"time"
)

// AuthorityPrefix é o prefixo das authorities derivadas de papéis
const AuthorityPrefix = "ROLE_"

// Role representa o papel de um usuário no sistema
// Papéis não registram ator de criação/alteração, apenas timestamps
type Role struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Deleted     bool
}

// Authority retorna a authority do papel (ex: "ROLE_ADMIN")
func (r *Role) Authority() string {
	return Authority(r.Name)
}

// ToggleDeleted inverte o flag de soft delete do papel
func (r *Role) ToggleDeleted() {
	r.Deleted = !r.Deleted
}

// Authority deriva a authority a partir do nome do papel
func Authority(roleName string) string {
	return AuthorityPrefix + strings.ToUpper(roleName)
}
