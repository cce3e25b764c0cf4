package types

// FractalData is the cumulative structured result of the four-phase
// interview. Field names mirror the product's wire format; every field has
// an empty default so a profile abandoned mid-interview is still valid.
type FractalData struct {
	Dimension1 Dimension1 `json:"dimension1"`
	Dimension2 Dimension2 `json:"dimension2"`
	Dimension3 []Area     `json:"dimension3"`
	Dimension4 Dimension4 `json:"dimension4"`
}

// Dimension1 is the ontological core: symbolic name, purpose, values,
// mantras. Collected in phase 1.
type Dimension1 struct {
	NombreSimbolico string   `json:"nombre_simbolico,omitempty"`
	Proposito       string   `json:"proposito,omitempty"`
	Valores         []string `json:"valores,omitempty"`
	Mantras         []string `json:"mantras,omitempty"`
}

// Dimension2 holds inner qualities and tools. Collected in phase 2.
type Dimension2 struct {
	Cualidades   []string `json:"cualidades,omitempty"`
	Herramientas []string `json:"herramientas,omitempty"`
}

// Area is one life area of dimension 3 (phase 3).
type Area struct {
	Nombre   string    `json:"nombre"`
	SubAreas []SubArea `json:"sub_areas"`
}

type SubArea struct {
	Nombre   string   `json:"nombre"`
	Acciones []string `json:"acciones"`
}

// Dimension4 describes how the user's mind works. Collected in phase 4.
type Dimension4 struct {
	Introduccion string    `json:"introduccion,omitempty"`
	Procesos     []Proceso `json:"procesos,omitempty"`
}

type Proceso struct {
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

// NewFractalData returns the empty profile used when a session starts.
func NewFractalData() FractalData {
	return FractalData{
		Dimension1: Dimension1{Valores: []string{}, Mantras: []string{}},
		Dimension2: Dimension2{Cualidades: []string{}, Herramientas: []string{}},
		Dimension3: []Area{},
		Dimension4: Dimension4{Procesos: []Proceso{}},
	}
}
