package pets

import "errors"

var errMissingID = errors.New("pet without id")

// CollectionKey es la clave bajo la que se guarda el array completo de mascotas.
const CollectionKey = "pets"

// Type es el tipo de mascota. Enumeración abierta: los valores de abajo son los
// que ofrece la UI, pero se acepta cualquier string.
type Type string

const (
	TypeDog     Type = "Dog"
	TypeCat     Type = "Cat"
	TypeBird    Type = "Bird"
	TypeFish    Type = "Fish"
	TypeRabbit  Type = "Rabbit"
	TypeHamster Type = "Hamster"
	TypeOther   Type = "Other"
)

// KnownTypes son las opciones que se muestran al crear una mascota (en orden).
var KnownTypes = []Type{
	TypeDog,
	TypeCat,
	TypeBird,
	TypeFish,
	TypeRabbit,
	TypeHamster,
	TypeOther,
}

// Pet representa una mascota registrada.
// Los tags json definen el formato persistido: {id, name, type, age}.
type Pet struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type Type   `json:"type"`
	Age  int    `json:"age"` // años
}

// Validate rechaza registros guardados sin id (p. ej. "{}" o de otro formato).
func (p Pet) Validate() error {
	if p.ID == "" {
		return errMissingID
	}
	return nil
}
