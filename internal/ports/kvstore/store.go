package kvstore

import "context"

// Store es el almacenamiento clave/valor de strings sobre el que se persisten
// las colecciones completas (equivalente a AsyncStorage / UserDefaults).
type Store interface {
	// Get devuelve found=false (sin error) si la clave nunca fue escrita.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	// Set reemplaza incondicionalmente el valor previo.
	Set(ctx context.Context, key, value string) error
}

// Pinger lo implementan los backends que pueden chequear conectividad (health).
type Pinger interface {
	Ping(ctx context.Context) error
}
