package caretasks

import (
	"errors"
	"time"
)

var (
	errMissingID   = errors.New("task without id")
	errMissingDate = errors.New("task without date")
)

// CollectionKey es la clave bajo la que se guarda el array completo de tareas.
const CollectionKey = "careTasks"

// CareTask es un cuidado registrado para una mascota.
// PetID no se valida contra pets: puede apuntar a una mascota borrada.
type CareTask struct {
	ID          string    `json:"id"`
	PetID       string    `json:"petId"`
	CareType    CareType  `json:"careType"`
	Note        string    `json:"note"`
	Date        time.Time `json:"date"` // creación, nunca se actualiza
	IsCompleted bool      `json:"isCompleted"`
}

// Validate rechaza tareas guardadas sin id o sin fecha de creación.
func (t CareTask) Validate() error {
	if t.ID == "" {
		return errMissingID
	}
	if t.Date.IsZero() {
		return errMissingDate
	}
	return nil
}

// TaskView es una tarea lista para mostrar.
type TaskView struct {
	CareTask

	PetName   string
	CareLabel string
	CareIcon  string
}
