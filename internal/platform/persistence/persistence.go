package persistence

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"petplus/internal/ports/kvstore"
)

var (
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrMalformedData      = errors.New("malformed stored data")
)

// Validator lo implementan los registros que saben comprobar su propia forma.
// Load lo llama sobre cada elemento ya decodificado.
type Validator interface {
	Validate() error
}

// Load lee el array JSON guardado bajo key.
// Clave inexistente => colección vacía (no es error).
// Datos corruptos (JSON inválido, elementos null o registros que no pasan Validate)
// => ErrMalformedData; nunca se tratan como vacío para no pisar lo guardado.
func Load[T any](ctx context.Context, store kvstore.Store, key string) ([]T, error) {
	raw, found, err := store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("%w: load %q: %w", ErrStorageUnavailable, key, err)
	}
	if !found {
		return []T{}, nil
	}

	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("%w: key %q holds an empty value", ErrMalformedData, key)
	}

	var elems []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &elems); err != nil {
		return nil, fmt.Errorf("%w: key %q: %w", ErrMalformedData, key, err)
	}

	// "null" guardado por otra versión del cliente => vacío
	items := make([]T, 0, len(elems))
	for i, elem := range elems {
		if bytes.Equal(bytes.TrimSpace(elem), []byte("null")) {
			return nil, fmt.Errorf("%w: key %q: element %d is null", ErrMalformedData, key, i)
		}

		var item T
		if err := json.Unmarshal(elem, &item); err != nil {
			return nil, fmt.Errorf("%w: key %q: element %d: %w", ErrMalformedData, key, i, err)
		}
		if v, ok := any(&item).(Validator); ok {
			if err := v.Validate(); err != nil {
				return nil, fmt.Errorf("%w: key %q: element %d: %w", ErrMalformedData, key, i, err)
			}
		}
		items = append(items, item)
	}
	return items, nil
}

// Save serializa la colección completa y reemplaza el valor previo.
// Un slice nil se guarda como "[]".
func Save[T any](ctx context.Context, store kvstore.Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}

	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("persistence: marshal %q: %w", key, err)
	}

	if err := store.Set(ctx, key, string(b)); err != nil {
		return fmt.Errorf("%w: save %q: %w", ErrStorageUnavailable, key, err)
	}
	return nil
}
