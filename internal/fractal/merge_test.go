package fractal

import (
	"encoding/json"
	"testing"

	"github.com/retodia/retodia-backend/internal/platform/apierr"
	"github.com/retodia/retodia-backend/internal/types"
)

func sampleData() types.FractalData {
	data := types.NewFractalData()
	data.Dimension1.NombreSimbolico = "Ánima"
	data.Dimension1.Valores = []string{"honestidad"}
	data.Dimension2.Cualidades = []string{"curiosidad"}
	data.Dimension3 = []types.Area{{Nombre: "Salud", SubAreas: []types.SubArea{{Nombre: "Sueño", Acciones: []string{"dormir 8h"}}}}}
	data.Dimension4.Introduccion = "intro"
	return data
}

func TestMerge_EmptyDatosIsNoOp(t *testing.T) {
	before := sampleData()
	for _, phase := range []int{1, 2, 4} {
		for _, datos := range []string{"{}", "null", ""} {
			after, err := Merge(before, phase, json.RawMessage(datos))
			if err != nil {
				t.Fatalf("phase %d datos %q: unexpected error %v", phase, datos, err)
			}
			assertEqualJSON(t, before, after)
		}
	}
}

func TestMerge_ShallowOverwriteKeepsAbsentFields(t *testing.T) {
	before := sampleData()
	after, err := Merge(before, 1, json.RawMessage(`{"proposito":"crecer"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if after.Dimension1.Proposito != "crecer" {
		t.Fatalf("expected proposito overwritten, got %q", after.Dimension1.Proposito)
	}
	if after.Dimension1.NombreSimbolico != "Ánima" {
		t.Fatalf("absent field was touched: %q", after.Dimension1.NombreSimbolico)
	}
	if len(after.Dimension1.Valores) != 1 || after.Dimension1.Valores[0] != "honestidad" {
		t.Fatalf("absent list was touched: %v", after.Dimension1.Valores)
	}
}

func TestMerge_Phase2Overwrite(t *testing.T) {
	after, err := Merge(sampleData(), 2, json.RawMessage(`{"herramientas":["escritura","meditación"]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(after.Dimension2.Herramientas) != 2 {
		t.Fatalf("expected herramientas replaced, got %v", after.Dimension2.Herramientas)
	}
	if len(after.Dimension2.Cualidades) != 1 || after.Dimension2.Cualidades[0] != "curiosidad" {
		t.Fatalf("absent field was touched: %v", after.Dimension2.Cualidades)
	}
}

func TestMerge_Phase3WholesaleReplace(t *testing.T) {
	after, err := Merge(sampleData(), 3, json.RawMessage(`[{"nombre":"Trabajo","sub_areas":[]}]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(after.Dimension3) != 1 || after.Dimension3[0].Nombre != "Trabajo" {
		t.Fatalf("expected old areas gone, got %+v", after.Dimension3)
	}
}

func TestMerge_Phase3EmptyListIsNoOp(t *testing.T) {
	before := sampleData()
	after, err := Merge(before, 3, json.RawMessage(`[]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertEqualJSON(t, before, after)
}

func TestMerge_Phase4Overwrite(t *testing.T) {
	after, err := Merge(sampleData(), 4, json.RawMessage(`{"procesos":[{"nombre":"pausa","descripcion":"respirar"}]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(after.Dimension4.Procesos) != 1 || after.Dimension4.Procesos[0].Nombre != "pausa" {
		t.Fatalf("expected procesos replaced, got %+v", after.Dimension4.Procesos)
	}
	if after.Dimension4.Introduccion != "intro" {
		t.Fatalf("absent field was touched: %q", after.Dimension4.Introduccion)
	}
}

func TestMerge_InvalidPhase(t *testing.T) {
	_, err := Merge(sampleData(), 5, json.RawMessage(`{"x":1}`))
	if !apierr.Is(err, apierr.CodeInvalidPhase) {
		t.Fatalf("expected invalid_phase, got %v", err)
	}
}

func assertEqualJSON(t *testing.T, want, got types.FractalData) {
	t.Helper()
	wantJSON, _ := json.Marshal(want)
	gotJSON, _ := json.Marshal(got)
	if string(wantJSON) != string(gotJSON) {
		t.Fatalf("profiles differ:\nwant %s\ngot  %s", wantJSON, gotJSON)
	}
}
