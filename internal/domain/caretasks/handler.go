package caretasks

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"petplus/internal/domain/pets"
	"petplus/internal/platform/persistence"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service) {
	r.Route("/tasks", func(tr chi.Router) {
		tr.Get("/", listTasksHandler(svc, petsSvc))
		tr.Post("/", createTaskHandler(svc, petsSvc))

		// Pantalla principal: tareas de hoy
		tr.Get("/today", todayTasksHandler(svc, petsSvc))
		tr.Get("/care-types", listCareTypesHandler())

		tr.Post("/{taskID}/toggle", toggleTaskHandler(svc, petsSvc))
		tr.Delete("/{taskID}", deleteTaskHandler(svc))
	})
}

// createTaskRequest es el cuerpo para registrar un cuidado.
type createTaskRequest struct {
	PetID    string   `json:"petId"`
	CareType CareType `json:"careType" enums:"feeding,walk,medication"`
	Note     string   `json:"note"`
}

// taskResponse es una tarea con los datos de presentación resueltos.
type taskResponse struct {
	ID            string    `json:"id"`
	PetID         string    `json:"petId"`
	PetName       string    `json:"petName"`
	CareType      CareType  `json:"careType"`
	CareTypeLabel string    `json:"careTypeLabel"`
	CareTypeIcon  string    `json:"careTypeIcon"`
	Note          string    `json:"note"`
	Date          time.Time `json:"date"`
	IsCompleted   bool      `json:"isCompleted"`
}

// createTaskHandler godoc
// @Summary Registrar cuidado
// @Description Registra una tarea (feeding, walk, medication) para una mascota existente. La fecha es la de creación.
// @Tags tasks
// @Accept json
// @Produce json
// @Param payload body createTaskRequest true "Datos de la tarea"
// @Success 201 {object} taskResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 404 {string} string "pet not found"
// @Failure 503 {string} string "storage unavailable"
// @Router /tasks [post]
func createTaskHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createTaskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		// El formulario solo ofrece mascotas existentes; el modelo no lo exige.
		p, err := petsSvc.GetByID(r.Context(), req.PetID)
		if err != nil {
			switch {
			case errors.Is(err, pets.ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, pets.ErrNotFound):
				http.Error(w, "pet not found", http.StatusNotFound)
			default:
				writeError(w, err)
			}
			return
		}

		t, err := svc.Create(r.Context(), CreateInput{
			PetID:    p.ID,
			CareType: req.CareType,
			Note:     req.Note,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		views := BuildViews([]CareTask{t}, map[string]string{p.ID: p.Name})
		writeJSON(w, http.StatusCreated, toTaskResponse(views[0]))
	}
}

// listTasksHandler godoc
// @Summary Listar tareas
// @Description Devuelve todas las tareas en orden de alta, con el nombre de la mascota ("Unknown" si ya no existe).
// @Tags tasks
// @Produce json
// @Success 200 {array} taskResponse
// @Failure 500 {string} string "internal error"
// @Failure 503 {string} string "storage unavailable"
// @Router /tasks [get]
func listTasksHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeViews(r.Context(), w, petsSvc, items)
	}
}

// todayTasksHandler godoc
// @Summary Tareas de hoy
// @Description Tareas creadas hoy según la zona horaria local del servidor.
// @Tags tasks
// @Produce json
// @Success 200 {array} taskResponse
// @Failure 500 {string} string "internal error"
// @Failure 503 {string} string "storage unavailable"
// @Router /tasks/today [get]
func todayTasksHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Today(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeViews(r.Context(), w, petsSvc, items)
	}
}

// listCareTypesHandler godoc
// @Summary Tipos de cuidado
// @Description Tabla estática label/icon por tipo de cuidado.
// @Tags tasks
// @Produce json
// @Success 200 {array} CareTypeInfo
// @Router /tasks/care-types [get]
func listCareTypesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, CareTypes)
	}
}

// toggleTaskHandler godoc
// @Summary Marcar/desmarcar tarea
// @Description Invierte isCompleted y persiste la colección completa.
// @Tags tasks
// @Produce json
// @Param taskID path string true "ID de la tarea"
// @Success 200 {object} taskResponse
// @Failure 404 {string} string "task not found"
// @Failure 503 {string} string "storage unavailable"
// @Router /tasks/{taskID}/toggle [post]
func toggleTaskHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, err := svc.Toggle(r.Context(), chi.URLParam(r, "taskID"))
		if err != nil {
			writeError(w, err)
			return
		}

		names, err := petsSvc.Names(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toTaskResponse(BuildViews([]CareTask{t}, names)[0]))
	}
}

// deleteTaskHandler godoc
// @Summary Borrar tarea
// @Tags tasks
// @Param taskID path string true "ID de la tarea"
// @Success 204
// @Failure 404 {string} string "task not found"
// @Router /tasks/{taskID} [delete]
func deleteTaskHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "taskID")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeViews(ctx context.Context, w http.ResponseWriter, petsSvc *pets.Service, items []CareTask) {
	names, err := petsSvc.Names(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	views := BuildViews(items, names)
	out := make([]taskResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toTaskResponse(v))
	}
	writeJSON(w, http.StatusOK, out)
}

func toTaskResponse(v TaskView) taskResponse {
	return taskResponse{
		ID:            v.ID,
		PetID:         v.PetID,
		PetName:       v.PetName,
		CareType:      v.CareType,
		CareTypeLabel: v.CareLabel,
		CareTypeIcon:  v.CareIcon,
		Note:          v.Note,
		Date:          v.Date,
		IsCompleted:   v.IsCompleted,
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "task not found", http.StatusNotFound)
	case errors.Is(err, persistence.ErrMalformedData):
		http.Error(w, "stored data is corrupted", http.StatusInternalServerError)
	case errors.Is(err, persistence.ErrStorageUnavailable):
		http.Error(w, "storage unavailable", http.StatusServiceUnavailable)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
