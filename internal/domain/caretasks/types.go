package caretasks

type CareType string

const (
	CareTypeFeeding    CareType = "feeding"
	CareTypeWalk       CareType = "walk"
	CareTypeMedication CareType = "medication"
)

// UnknownPetName se muestra cuando petId no corresponde a ninguna mascota.
const UnknownPetName = "Unknown"

// CareTypeInfo es la entrada de la tabla estática label/icon.
type CareTypeInfo struct {
	Type  CareType `json:"type"`
	Label string   `json:"label"`
	Icon  string   `json:"icon"`
}

// CareTypes en el orden en que los ofrece el formulario.
var CareTypes = []CareTypeInfo{
	{Type: CareTypeFeeding, Label: "Feeding", Icon: "restaurant"},
	{Type: CareTypeWalk, Label: "Walk", Icon: "walk"},
	{Type: CareTypeMedication, Label: "Medication", Icon: "medkit"},
}

func (c CareType) Valid() bool {
	_, ok := lookup(c)
	return ok
}

// Label devuelve el texto para mostrar; tipos desconocidos se muestran tal cual.
func (c CareType) Label() string {
	if info, ok := lookup(c); ok {
		return info.Label
	}
	return string(c)
}

func (c CareType) Icon() string {
	if info, ok := lookup(c); ok {
		return info.Icon
	}
	return ""
}

func lookup(c CareType) (CareTypeInfo, bool) {
	for _, info := range CareTypes {
		if info.Type == c {
			return info, true
		}
	}
	return CareTypeInfo{}, false
}
