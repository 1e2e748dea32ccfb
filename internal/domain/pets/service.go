package pets

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
)

// DeletePolicy decide qué pasa con las tareas de una mascota borrada.
type DeletePolicy string

const (
	// CascadeTasks borra también las tareas de la mascota (default).
	CascadeTasks DeletePolicy = "cascade"
	// KeepTasks deja las tareas; se muestran con mascota "Unknown".
	KeepTasks DeletePolicy = "keep"
)

// TaskRemover lo implementa caretasks.Service.
// Se usa para evitar ciclos de imports (pets <-> caretasks).
type TaskRemover interface {
	DeleteByPet(ctx context.Context, petID string) (int, error)
}

type Service struct {
	repo   Repository
	tasks  TaskRemover
	policy DeletePolicy
	logger *zap.Logger
}

// NewService arma el servicio. tasks puede ser nil: equivale a KeepTasks.
func NewService(repo Repository, tasks TaskRemover, policy DeletePolicy, logger *zap.Logger) *Service {
	if policy == "" {
		policy = CascadeTasks
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:   repo,
		tasks:  tasks,
		policy: policy,
		logger: logger,
	}
}

// NewPet construye una mascota con id nuevo. No valida ni normaliza:
// eso lo hace quien llama.
func NewPet(name string, typ Type, age int) Pet {
	return Pet{
		ID:   uuid.NewString(),
		Name: name,
		Type: typ,
		Age:  age,
	}
}

type CreateInput struct {
	Name string
	Type string
	Age  int
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	name := strings.TrimSpace(in.Name)
	typ := strings.TrimSpace(in.Type)

	if name == "" || typ == "" {
		return Pet{}, ErrInvalidInput
	}
	if in.Age < 0 {
		return Pet{}, ErrInvalidInput
	}

	p := NewPet(name, Type(typ), in.Age)

	if _, err := s.repo.Mutate(ctx, func(items []Pet) ([]Pet, error) {
		return append(items, p), nil
	}); err != nil {
		return Pet{}, err
	}

	s.logger.Info("pet created", zap.String("pet_id", p.ID), zap.String("type", string(p.Type)))
	return p, nil
}

// List devuelve las mascotas en orden de inserción.
func (s *Service) List(ctx context.Context) ([]Pet, error) {
	return s.repo.Load(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrInvalidInput
	}

	items, err := s.repo.Load(ctx)
	if err != nil {
		return Pet{}, err
	}
	for _, p := range items {
		if p.ID == id {
			return p, nil
		}
	}
	return Pet{}, ErrNotFound
}

// Delete quita la mascota y, según la política, sus tareas.
// Primero se persiste la mascota: si falla el borrado de tareas quedan huérfanas
// (se ven como "Unknown"), nunca una mascota sin sus tareas.
func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}

	if _, err := s.repo.Mutate(ctx, func(items []Pet) ([]Pet, error) {
		out, found := Remove(items, id)
		if !found {
			return nil, ErrNotFound
		}
		return out, nil
	}); err != nil {
		return err
	}

	if s.policy != CascadeTasks || s.tasks == nil {
		s.logger.Info("pet deleted", zap.String("pet_id", id), zap.String("policy", string(KeepTasks)))
		return nil
	}

	n, err := s.tasks.DeleteByPet(ctx, id)
	if err != nil {
		s.logger.Warn("pet deleted but its tasks were kept", zap.String("pet_id", id), zap.Error(err))
		return fmt.Errorf("pets: delete tasks of %s: %w", id, err)
	}

	s.logger.Info("pet deleted",
		zap.String("pet_id", id),
		zap.String("policy", string(CascadeTasks)),
		zap.Int("tasks_removed", n),
	)
	return nil
}

// Remove devuelve una copia sin la mascota id (orden preservado).
func Remove(items []Pet, id string) ([]Pet, bool) {
	out := make([]Pet, 0, len(items))
	found := false
	for _, p := range items {
		if p.ID == id {
			found = true
			continue
		}
		out = append(out, p)
	}
	return out, found
}
