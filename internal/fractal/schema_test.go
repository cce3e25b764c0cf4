package fractal

import (
	"strings"
	"testing"

	"github.com/retodia/retodia-backend/internal/platform/apierr"
	"github.com/retodia/retodia-backend/internal/types"
)

func TestSpecForPhase_EmbedsCollectedSnapshot(t *testing.T) {
	data := types.NewFractalData()
	data.Dimension1.NombreSimbolico = "Ánima"

	spec, err := SpecForPhase(1, data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(spec.Instruction, `"nombre_simbolico":"Ánima"`) {
		t.Fatalf("instruction does not embed current data:\n%s", spec.Instruction)
	}
	if !strings.Contains(spec.Instruction, "Fase actual: 1") {
		t.Fatalf("instruction missing phase goal:\n%s", spec.Instruction)
	}
}

func TestSpecForPhase_SchemaRequiresAllTopLevelFields(t *testing.T) {
	for phase := PhaseMin; phase <= PhaseMax; phase++ {
		spec, err := SpecForPhase(phase, types.NewFractalData())
		if err != nil {
			t.Fatalf("phase %d: %v", phase, err)
		}
		required, ok := spec.ResponseSchema["required"].([]string)
		if !ok || len(required) != 3 {
			t.Fatalf("phase %d: expected 3 required fields, got %v", phase, spec.ResponseSchema["required"])
		}
		props, ok := spec.ResponseSchema["properties"].(map[string]any)
		if !ok {
			t.Fatalf("phase %d: missing properties", phase)
		}
		for _, field := range []string{"respuesta_conversacional", "datos", "fase_completa"} {
			if _, ok := props[field]; !ok {
				t.Fatalf("phase %d: schema missing %q", phase, field)
			}
		}
	}
}

func TestSpecForPhase_DatosShapePerPhase(t *testing.T) {
	for phase, wantType := range map[int]string{1: "OBJECT", 2: "OBJECT", 3: "ARRAY", 4: "OBJECT"} {
		spec, err := SpecForPhase(phase, types.NewFractalData())
		if err != nil {
			t.Fatalf("phase %d: %v", phase, err)
		}
		props := spec.ResponseSchema["properties"].(map[string]any)
		datos := props["datos"].(map[string]any)
		if datos["type"] != wantType {
			t.Fatalf("phase %d: expected datos type %s, got %v", phase, wantType, datos["type"])
		}
	}
}

func TestSpecForPhase_InvalidPhase(t *testing.T) {
	for _, phase := range []int{0, 5, -1} {
		if _, err := SpecForPhase(phase, types.NewFractalData()); !apierr.Is(err, apierr.CodeInvalidPhase) {
			t.Fatalf("phase %d: expected invalid_phase, got %v", phase, err)
		}
	}
}
