package router

import (
	"context"
	"net/http"
	"time"

	_ "petplus/docs"
	mem "petplus/internal/adapters/storage/memory"
	"petplus/internal/domain/caretasks"
	"petplus/internal/domain/pets"
	"petplus/internal/middleware"
	"petplus/internal/platform/persistence"
	"petplus/internal/ports/kvstore"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type Options struct {
	// Opcional: si no viene, in-memory (modo dev).
	Store kvstore.Store

	Logger *zap.Logger

	// Default: pets.CascadeTasks
	DeletePolicy pets.DeletePolicy
}

func NewRouter(opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	store := opts.Store
	if store == nil {
		store = mem.NewStore()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(logger))
	r.Use(middleware.Recover(logger))

	// Un solo gateway: serializa las escrituras por colección
	gw := persistence.NewGateway(store, logger.Named("persistence"))

	r.Get("/health", healthHandler(gw.Store()))
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	petRepo := persistence.NewCollection[pets.Pet](gw, pets.CollectionKey)
	taskRepo := persistence.NewCollection[caretasks.CareTask](gw, caretasks.CollectionKey)

	// Services por módulo
	tasksSvc := caretasks.NewService(taskRepo, logger.Named("caretasks"))
	petsSvc := pets.NewService(petRepo, tasksSvc, opts.DeletePolicy, logger.Named("pets"))

	// Rutas por módulo
	pets.RegisterRoutes(r, petsSvc)
	caretasks.RegisterRoutes(r, tasksSvc, petsSvc)

	return r
}

// healthHandler godoc
// @Summary Health check
// @Description Liveness. Si el backend soporta ping, también lo verifica.
// @Tags health
// @Produce plain
// @Success 200 {string} string "ok"
// @Failure 503 {string} string "storage unavailable"
// @Router /health [get]
func healthHandler(store kvstore.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if p, ok := store.(kvstore.Pinger); ok {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()

			if err := p.Ping(ctx); err != nil {
				http.Error(w, "storage unavailable", http.StatusServiceUnavailable)
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}
}
