package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// auditImmutableColumns nunca são reescritas por Update
var auditImmutableColumns = []string{"created_at", "created_by"}

// crudRepository implementa repositories.Repository[E] sobre um model GORM M
type crudRepository[E any, M any] struct {
	db         *gorm.DB
	primaryKey string
	toModel    func(*E) *M
	toEntity   func(*M) *E
	omit       []string
}

func newCRUDRepository[E any, M any](db *gorm.DB, primaryKey string, toModel func(*E) *M, toEntity func(*M) *E) *crudRepository[E, M] {
	return &crudRepository[E, M]{
		db:         db,
		primaryKey: primaryKey,
		toModel:    toModel,
		toEntity:   toEntity,
		omit:       auditImmutableColumns,
	}
}

func (r *crudRepository[E, M]) FindAll(ctx context.Context) ([]*E, error) {
	var models []*M

	// Sem filtro de deleted: listagens retornam também registros removidos logicamente
	if err := r.getDB(ctx).Order(r.primaryKey).Find(&models).Error; err != nil {
		return nil, err
	}

	entities := make([]*E, 0, len(models))
	for _, model := range models {
		entities = append(entities, r.toEntity(model))
	}
	return entities, nil
}

func (r *crudRepository[E, M]) FindByID(ctx context.Context, id int64) (*E, error) {
	var model M

	if err := r.getDB(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *crudRepository[E, M]) Create(ctx context.Context, entity *E) error {
	model := r.toModel(entity)

	if err := r.getDB(ctx).Create(model).Error; err != nil {
		return err
	}

	// Copiar ID gerado e timestamps preenchidos pelo banco
	*entity = *r.toEntity(model)
	return nil
}

func (r *crudRepository[E, M]) Update(ctx context.Context, entity *E) error {
	model := r.toModel(entity)

	if err := r.getDB(ctx).Omit(r.omit...).Save(model).Error; err != nil {
		return err
	}

	*entity = *r.toEntity(model)
	return nil
}

// getDB extrai DB do contexto (para suportar transações)
func (r *crudRepository[E, M]) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return r.db.WithContext(ctx)
}
