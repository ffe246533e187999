package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/fatec/pi-back/internal/domain/entities"
	"github.com/fatec/pi-back/internal/domain/repositories"
	"github.com/fatec/pi-back/internal/domain/valueobjects"
)

// UserRepository implementa repositories.UserRepository
type UserRepository struct {
	*crudRepository[entities.User, UserModel]
}

// NewUserRepository cria um novo UserRepository
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{
		crudRepository: newCRUDRepository(db, "id_user", userToModel, userToEntity),
	}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	var model UserModel

	if err := r.getDB(ctx).Where("email = ?", valueobjects.NormalizeEmail(email)).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return userToEntity(&model), nil
}

// Conversores
func userToModel(user *entities.User) *UserModel {
	return &UserModel{
		ID:           user.ID,
		Email:        user.Email.String(),
		Password:     user.PasswordHash,
		Name:         user.Name,
		RoleID:       user.RoleID,
		AuditColumns: auditToColumns(user.Audit),
	}
}

func userToEntity(model *UserModel) *entities.User {
	// Emails persistidos já foram validados na escrita; uma falha aqui indica dado legado
	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		email = valueobjects.Email{}
	}

	return &entities.User{
		ID:           model.ID,
		Email:        email,
		Name:         model.Name,
		PasswordHash: model.Password,
		RoleID:       model.RoleID,
		Audit:        columnsToAudit(model.AuditColumns),
	}
}

func auditToColumns(a entities.Audit) AuditColumns {
	return AuditColumns{
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
		CreatedBy: a.CreatedBy,
		UpdatedBy: a.UpdatedBy,
		Deleted:   a.Deleted,
	}
}

func columnsToAudit(c AuditColumns) entities.Audit {
	return entities.Audit{
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		CreatedBy: c.CreatedBy,
		UpdatedBy: c.UpdatedBy,
		Deleted:   c.Deleted,
	}
}
