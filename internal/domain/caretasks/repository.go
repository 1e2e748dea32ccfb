package caretasks

import "context"

// Repository persiste la colección completa de tareas.
// persistence.Collection[CareTask] lo implementa.
type Repository interface {
	Load(ctx context.Context) ([]CareTask, error)
	Save(ctx context.Context, items []CareTask) error
	Mutate(ctx context.Context, transform func([]CareTask) ([]CareTask, error)) ([]CareTask, error)
}
