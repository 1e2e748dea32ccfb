package caretasks

import "time"

// Today devuelve las tareas creadas el mismo día calendario que now,
// en la zona horaria de now. Mantiene el orden de entrada.
func Today(tasks []CareTask, now time.Time) []CareTask {
	out := make([]CareTask, 0)
	for _, t := range tasks {
		if SameDay(t.Date, now) {
			out = append(out, t)
		}
	}
	return out
}

// SameDay compara año/mes/día de a convertido a la zona de ref.
func SameDay(a, ref time.Time) bool {
	y1, m1, d1 := a.In(ref.Location()).Date()
	y2, m2, d2 := ref.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Toggle devuelve una copia con isCompleted invertido en la tarea id.
// found=false => la copia es idéntica a la entrada.
func Toggle(tasks []CareTask, id string) ([]CareTask, bool) {
	out := make([]CareTask, len(tasks))
	copy(out, tasks)

	for i := range out {
		if out[i].ID == id {
			out[i].IsCompleted = !out[i].IsCompleted
			return out, true
		}
	}
	return out, false
}

// BuildViews resuelve nombre de mascota (fallback "Unknown") y label/icon.
func BuildViews(tasks []CareTask, petNames map[string]string) []TaskView {
	out := make([]TaskView, 0, len(tasks))
	for _, t := range tasks {
		name, ok := petNames[t.PetID]
		if !ok {
			name = UnknownPetName
		}
		out = append(out, TaskView{
			CareTask:  t,
			PetName:   name,
			CareLabel: t.CareType.Label(),
			CareIcon:  t.CareType.Icon(),
		})
	}
	return out
}
