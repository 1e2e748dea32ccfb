package caretasks

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("task not found")

	// transform sin cambios: Mutate no escribe
	errUnchanged = errors.New("unchanged")
)

type Service struct {
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:   repo,
		now:    time.Now,
		logger: logger,
	}
}

// NewTask construye una tarea con id nuevo, fecha actual y sin completar.
// No valida: eso lo hace quien llama.
func NewTask(petID string, careType CareType, note string) CareTask {
	return NewTaskAt(petID, careType, note, time.Now())
}

// NewTaskAt es NewTask con la fecha de creación explícita.
func NewTaskAt(petID string, careType CareType, note string, at time.Time) CareTask {
	return CareTask{
		ID:          uuid.NewString(),
		PetID:       petID,
		CareType:    careType,
		Note:        note,
		Date:        at,
		IsCompleted: false,
	}
}

type CreateInput struct {
	PetID    string
	CareType CareType
	Note     string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (CareTask, error) {
	petID := strings.TrimSpace(in.PetID)
	if petID == "" {
		return CareTask{}, ErrInvalidInput
	}
	if !in.CareType.Valid() {
		return CareTask{}, ErrInvalidInput
	}

	t := NewTaskAt(petID, in.CareType, strings.TrimSpace(in.Note), s.now())

	if _, err := s.repo.Mutate(ctx, func(items []CareTask) ([]CareTask, error) {
		return append(items, t), nil
	}); err != nil {
		return CareTask{}, err
	}

	s.logger.Info("care task created",
		zap.String("task_id", t.ID),
		zap.String("pet_id", t.PetID),
		zap.String("care_type", string(t.CareType)),
	)
	return t, nil
}

// List devuelve todas las tareas en orden de alta.
func (s *Service) List(ctx context.Context) ([]CareTask, error) {
	return s.repo.Load(ctx)
}

// Today devuelve las tareas creadas hoy (hora local del proceso).
func (s *Service) Today(ctx context.Context) ([]CareTask, error) {
	items, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	return Today(items, s.now()), nil
}

func (s *Service) GetByID(ctx context.Context, id string) (CareTask, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return CareTask{}, ErrInvalidInput
	}

	items, err := s.repo.Load(ctx)
	if err != nil {
		return CareTask{}, err
	}
	for _, t := range items {
		if t.ID == id {
			return t, nil
		}
	}
	return CareTask{}, ErrNotFound
}

// Toggle invierte isCompleted y persiste la colección completa.
// Id desconocido => ErrNotFound y no se escribe nada.
func (s *Service) Toggle(ctx context.Context, id string) (CareTask, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return CareTask{}, ErrInvalidInput
	}

	var toggled CareTask
	if _, err := s.repo.Mutate(ctx, func(items []CareTask) ([]CareTask, error) {
		out, found := Toggle(items, id)
		if !found {
			return nil, ErrNotFound
		}
		for _, t := range out {
			if t.ID == id {
				toggled = t
				break
			}
		}
		return out, nil
	}); err != nil {
		return CareTask{}, err
	}

	s.logger.Debug("care task toggled", zap.String("task_id", id), zap.Bool("completed", toggled.IsCompleted))
	return toggled, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}

	_, err := s.repo.Mutate(ctx, func(items []CareTask) ([]CareTask, error) {
		out := filter(items, func(t CareTask) bool { return t.ID != id })
		if len(out) == len(items) {
			return nil, ErrNotFound
		}
		return out, nil
	})
	return err
}

// DeleteByPet borra todas las tareas de petID (cascada al borrar una mascota).
// Sin tareas que borrar no escribe.
func (s *Service) DeleteByPet(ctx context.Context, petID string) (int, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return 0, ErrInvalidInput
	}

	removed := 0
	_, err := s.repo.Mutate(ctx, func(items []CareTask) ([]CareTask, error) {
		out := filter(items, func(t CareTask) bool { return t.PetID != petID })
		removed = len(items) - len(out)
		if removed == 0 {
			return nil, errUnchanged
		}
		return out, nil
	})
	if err != nil && !errors.Is(err, errUnchanged) {
		return 0, err
	}
	return removed, nil
}

func filter(items []CareTask, keep func(CareTask) bool) []CareTask {
	out := make([]CareTask, 0, len(items))
	for _, t := range items {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}
