package fractal

import (
	"encoding/json"
	"fmt"

	"github.com/retodia/retodia-backend/internal/platform/apierr"
	"github.com/retodia/retodia-backend/internal/types"
)

const (
	PhaseMin = 1
	PhaseMax = 4
)

// PhaseSpec is what a single interview phase needs from the model: the
// system instruction driving the conversation and the schema its structured
// output must satisfy.
type PhaseSpec struct {
	Instruction    string
	ResponseSchema map[string]any
}

const baseInstruction = `Eres un "Lector de Fractales Personales", un intérprete simbólico conversacional. Tu objetivo es ayudar al usuario a mapear su sistema personal a través de una conversación cálida, natural y perspicaz. Tu única salida DEBE SER un objeto JSON válido que se ajuste al esquema proporcionado. No incluyas texto fuera del objeto JSON. En tu respuesta conversacional, sé amable y ofrece ideas o ejemplos si el usuario parece atascado. Basa tu extracción de datos en TODA la conversación.`

// SpecForPhase returns the instruction and response schema for the given
// phase. The instruction embeds a snapshot of the data already collected so
// the model does not re-ask answered questions. Phases outside 1..4 are a
// caller bug and fail with an invalid_phase error.
func SpecForPhase(phase int, data types.FractalData) (PhaseSpec, error) {
	switch phase {
	case 1:
		return PhaseSpec{
			Instruction: phaseInstruction(
				`Fase actual: 1 - YO. Extrae el "Core ontológico" del usuario: nombre simbólico, propósito vital, valores esenciales y mantras. Pregunta sobre lo que le mueve y define. Cuando creas que has recopilado información suficiente, establece 'fase_completa' a true y en tu respuesta conversacional, introduce la Fase 2: CUALIDADES Y ESTRUCTURA.`,
				data.Dimension1,
			),
			ResponseSchema: replySchema(objectSchema(map[string]any{
				"nombre_simbolico": stringSchema(""),
				"proposito":        stringSchema(""),
				"valores":          arraySchema(stringSchema("")),
				"mantras":          arraySchema(stringSchema("")),
			})),
		}, nil
	case 2:
		return PhaseSpec{
			Instruction: phaseInstruction(
				`Fase actual: 2 - CUALIDADES Y ESTRUCTURA. Identifica las cualidades y herramientas internas del usuario. Cuando creas que has recopilado suficiente información, establece 'fase_completa' a true y en tu respuesta conversacional, introduce la Fase 3: LAS AREAS QUE MAS TE IMPORTAN.`,
				data.Dimension2,
			),
			ResponseSchema: replySchema(objectSchema(map[string]any{
				"cualidades":   arraySchema(stringSchema("")),
				"herramientas": arraySchema(stringSchema("")),
			})),
		}, nil
	case 3:
		return PhaseSpec{
			Instruction: phaseInstruction(
				`Fase actual: 3 - LAS AREAS QUE MAS TE IMPORTAN. Mapea las áreas de vida, sub-áreas y acciones del usuario. Devuelve SIEMPRE la lista completa de áreas tal y como la entiendes ahora. Cuando creas que has recopilado suficiente información, establece 'fase_completa' a true y en tu respuesta conversacional, introduce la Fase 4: COMO FUNCIONA TU MENTE.`,
				data.Dimension3,
			),
			ResponseSchema: replySchema(arraySchema(objectSchema(map[string]any{
				"nombre": stringSchema(""),
				"sub_areas": arraySchema(objectSchema(map[string]any{
					"nombre":   stringSchema(""),
					"acciones": arraySchema(stringSchema("")),
				})),
			}))),
		}, nil
	case 4:
		return PhaseSpec{
			Instruction: phaseInstruction(
				`Fase actual: 4 - COMO FUNCIONA TU MENTE. Descubre los módulos de funcionamiento personal (procesos internos) del usuario. Cuando creas que has recopilado suficiente información, establece 'fase_completa' a true y en tu respuesta conversacional, informa al usuario que el proceso ha finalizado.`,
				data.Dimension4,
			),
			ResponseSchema: replySchema(objectSchema(map[string]any{
				"introduccion": stringSchema(""),
				"procesos": arraySchema(objectSchema(map[string]any{
					"nombre":      stringSchema(""),
					"descripcion": stringSchema(""),
				})),
			})),
		}, nil
	default:
		return PhaseSpec{}, apierr.InvalidPhase(phase)
	}
}

func phaseInstruction(goal string, snapshot any) string {
	current, err := json.Marshal(snapshot)
	if err != nil {
		current = []byte("{}")
	}
	return fmt.Sprintf("%s\n\n%s Datos actuales: %s", baseInstruction, goal, current)
}

// replySchema wraps a phase-specific datos shape into the full structured
// reply schema. All three top-level fields are mandatory.
func replySchema(datos map[string]any) map[string]any {
	return map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"respuesta_conversacional": stringSchema("Tu respuesta para continuar el diálogo con el usuario de forma natural y alentadora."),
			"datos":                    datos,
			"fase_completa":            boolSchema("Establece en 'true' solo cuando hayas recopilado información suficiente para todos los campos de esta dimensión y estés listo para pasar a la siguiente. De lo contrario, establece en 'false'."),
		},
		"required": []string{"respuesta_conversacional", "datos", "fase_completa"},
	}
}

func stringSchema(description string) map[string]any {
	s := map[string]any{"type": "STRING"}
	if description != "" {
		s["description"] = description
	}
	return s
}

func boolSchema(description string) map[string]any {
	s := map[string]any{"type": "BOOLEAN"}
	if description != "" {
		s["description"] = description
	}
	return s
}

func arraySchema(items map[string]any) map[string]any {
	return map[string]any{"type": "ARRAY", "items": items}
}

func objectSchema(properties map[string]any) map[string]any {
	return map[string]any{"type": "OBJECT", "properties": properties}
}
