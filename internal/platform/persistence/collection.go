package persistence

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"petplus/internal/ports/kvstore"
)

// Gateway comparte un Store entre colecciones y serializa las escrituras por clave:
// dentro del proceso, dos mutaciones sobre la misma colección nunca se pisan.
// Entre procesos que comparten backend el último Save sigue ganando.
type Gateway struct {
	store  kvstore.Store
	logger *zap.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewGateway(store kvstore.Store, logger *zap.Logger) *Gateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gateway{
		store:  store,
		logger: logger,
		locks:  make(map[string]*sync.Mutex),
	}
}

// Store expone el backend (health checks).
func (g *Gateway) Store() kvstore.Store {
	return g.store
}

func (g *Gateway) writer(key string) *sync.Mutex {
	g.mu.Lock()
	defer g.mu.Unlock()

	l, ok := g.locks[key]
	if !ok {
		l = &sync.Mutex{}
		g.locks[key] = l
	}
	return l
}

// Collection es una colección completa de T guardada como array JSON bajo una clave fija.
type Collection[T any] struct {
	gw  *Gateway
	key string
}

func NewCollection[T any](gw *Gateway, key string) *Collection[T] {
	return &Collection[T]{gw: gw, key: key}
}

func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	items, err := Load[T](ctx, c.gw.store, c.key)
	if err != nil {
		c.logFailure("load", err)
		return nil, err
	}
	c.gw.logger.Debug("collection loaded", zap.String("key", c.key), zap.Int("count", len(items)))
	return items, nil
}

// Save reemplaza la colección completa.
func (c *Collection[T]) Save(ctx context.Context, items []T) error {
	l := c.gw.writer(c.key)
	l.Lock()
	defer l.Unlock()

	return c.save(ctx, items)
}

// Mutate hace load -> transform -> save bajo el writer de la clave.
// Si transform devuelve error no se escribe nada y el error vuelve tal cual.
func (c *Collection[T]) Mutate(ctx context.Context, transform func([]T) ([]T, error)) ([]T, error) {
	l := c.gw.writer(c.key)
	l.Lock()
	defer l.Unlock()

	items, err := c.Load(ctx)
	if err != nil {
		return nil, err
	}

	next, err := transform(items)
	if err != nil {
		return nil, err
	}

	if err := c.save(ctx, next); err != nil {
		return nil, err
	}
	return next, nil
}

func (c *Collection[T]) save(ctx context.Context, items []T) error {
	if err := Save(ctx, c.gw.store, c.key, items); err != nil {
		c.logFailure("save", err)
		return err
	}
	c.gw.logger.Debug("collection saved", zap.String("key", c.key), zap.Int("count", len(items)))
	return nil
}

func (c *Collection[T]) logFailure(op string, err error) {
	fields := []zap.Field{zap.String("key", c.key), zap.String("op", op), zap.Error(err)}
	if errors.Is(err, ErrMalformedData) {
		c.gw.logger.Warn("stored collection is malformed", fields...)
		return
	}
	c.gw.logger.Error("collection io failed", fields...)
}
