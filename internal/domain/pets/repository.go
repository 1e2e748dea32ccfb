package pets

import "context"

// Repository persiste la colección completa (read-modify-write).
// persistence.Collection[Pet] lo implementa.
type Repository interface {
	Load(ctx context.Context) ([]Pet, error)
	Save(ctx context.Context, items []Pet) error
	Mutate(ctx context.Context, transform func([]Pet) ([]Pet, error)) ([]Pet, error)
}
