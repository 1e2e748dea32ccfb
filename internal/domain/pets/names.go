package pets

import "context"

// Names devuelve id -> nombre de todas las mascotas.
// Lo usan las vistas de tareas para resolver petId sin cargar la colección por tarea.
func (s *Service) Names(ctx context.Context) (map[string]string, error) {
	items, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[string]string, len(items))
	for _, p := range items {
		out[p.ID] = p.Name
	}
	return out, nil
}
