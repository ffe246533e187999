package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/fatec/pi-back/internal/domain/entities"
	"github.com/fatec/pi-back/internal/domain/repositories"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)

// store é um repositório genérico em memória indexado por ID
// Entidades são copiadas na entrada e na saída para não compartilhar estado com o chamador
type store[T any] struct {
	mu     sync.RWMutex
	byID   map[int64]T
	nextID int64
	idOf   func(*T) *int64
}

func newStore[T any](idOf func(*T) *int64) *store[T] {
	return &store[T]{
		byID: make(map[int64]T),
		idOf: idOf,
	}
}

func (s *store[T]) FindAll(ctx context.Context) ([]*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int64, 0, len(s.byID))
	for id := range s.byID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]*T, 0, len(ids))
	for _, id := range ids {
		v := s.byID[id]
		out = append(out, &v)
	}
	return out, nil
}

func (s *store[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

// Create usa o ID informado quando presente (perfis 1:1 com usuário); caso contrário gera um novo
func (s *store[T]) Create(ctx context.Context, entity *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.idOf(entity)
	if *id == 0 {
		s.nextID++
		for s.exists(s.nextID) {
			s.nextID++
		}
		*id = s.nextID
	} else if s.exists(*id) {
		return ErrAlreadyExists
	}

	s.byID[*id] = *entity
	return nil
}

func (s *store[T]) Update(ctx context.Context, entity *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := *s.idOf(entity)
	if !s.exists(id) {
		return ErrNotFound
	}
	s.byID[id] = *entity
	return nil
}

func (s *store[T]) exists(id int64) bool {
	_, ok := s.byID[id]
	return ok
}

// Construtores por entidade

// NewRepositories cria um conjunto vazio de repositórios em memória
func NewRepositories() repositories.Set {
	return repositories.Set{
		Users:       NewUserRepository(),
		Roles:       NewRoleRepository(),
		Patients:    NewPatientRepository(),
		Caregivers:  NewCaregiverRepository(),
		Haves:       NewHaveRepository(),
		Medications: NewMedicationRepository(),
		Relations:   NewRelationMPRepository(),
		Histories:   NewHistoryRepository(),
	}
}

func NewRoleRepository() repositories.RoleRepository {
	return newStore(func(r *entities.Role) *int64 { return &r.ID })
}

func NewPatientRepository() repositories.PatientRepository {
	return newStore(func(p *entities.Patient) *int64 { return &p.ID })
}

func NewCaregiverRepository() repositories.CaregiverRepository {
	return newStore(func(c *entities.Caregiver) *int64 { return &c.ID })
}

func NewHaveRepository() repositories.HaveRepository {
	return newStore(func(h *entities.Have) *int64 { return &h.ID })
}

func NewMedicationRepository() repositories.MedicationRepository {
	return newStore(func(m *entities.Medication) *int64 { return &m.ID })
}

func NewRelationMPRepository() repositories.RelationMPRepository {
	return newStore(func(r *entities.RelationMP) *int64 { return &r.ID })
}

func NewHistoryRepository() repositories.HistoryRepository {
	return newStore(func(h *entities.History) *int64 { return &h.ID })
}
