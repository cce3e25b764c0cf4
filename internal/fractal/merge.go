package fractal

import (
	"encoding/json"
	"fmt"

	"github.com/retodia/retodia-backend/internal/platform/apierr"
	"github.com/retodia/retodia-backend/internal/types"
)

// Merge folds newly extracted datos into the profile under the per-phase
// policy: shallow field overwrite for dimensions 1, 2 and 4 (fields absent
// from the incoming data are left unchanged, so the model may emit only
// newly learned fields turn by turn), wholesale replace for dimension 3
// (the model resends its complete current area tree each time). Empty datos
// leaves the profile unchanged.
func Merge(data types.FractalData, phase int, datos json.RawMessage) (types.FractalData, error) {
	if emptyDatos(datos) {
		return data, nil
	}
	switch phase {
	case 1:
		var patch struct {
			NombreSimbolico *string   `json:"nombre_simbolico"`
			Proposito       *string   `json:"proposito"`
			Valores         *[]string `json:"valores"`
			Mantras         *[]string `json:"mantras"`
		}
		if err := json.Unmarshal(datos, &patch); err != nil {
			return data, apierr.MalformedModelOutput(fmt.Errorf("decode datos for phase 1: %w", err))
		}
		if patch.NombreSimbolico != nil {
			data.Dimension1.NombreSimbolico = *patch.NombreSimbolico
		}
		if patch.Proposito != nil {
			data.Dimension1.Proposito = *patch.Proposito
		}
		if patch.Valores != nil {
			data.Dimension1.Valores = *patch.Valores
		}
		if patch.Mantras != nil {
			data.Dimension1.Mantras = *patch.Mantras
		}
		return data, nil
	case 2:
		var patch struct {
			Cualidades   *[]string `json:"cualidades"`
			Herramientas *[]string `json:"herramientas"`
		}
		if err := json.Unmarshal(datos, &patch); err != nil {
			return data, apierr.MalformedModelOutput(fmt.Errorf("decode datos for phase 2: %w", err))
		}
		if patch.Cualidades != nil {
			data.Dimension2.Cualidades = *patch.Cualidades
		}
		if patch.Herramientas != nil {
			data.Dimension2.Herramientas = *patch.Herramientas
		}
		return data, nil
	case 3:
		var areas []types.Area
		if err := json.Unmarshal(datos, &areas); err != nil {
			return data, apierr.MalformedModelOutput(fmt.Errorf("decode datos for phase 3: %w", err))
		}
		if len(areas) == 0 {
			return data, nil
		}
		data.Dimension3 = areas
		return data, nil
	case 4:
		var patch struct {
			Introduccion *string          `json:"introduccion"`
			Procesos     *[]types.Proceso `json:"procesos"`
		}
		if err := json.Unmarshal(datos, &patch); err != nil {
			return data, apierr.MalformedModelOutput(fmt.Errorf("decode datos for phase 4: %w", err))
		}
		if patch.Introduccion != nil {
			data.Dimension4.Introduccion = *patch.Introduccion
		}
		if patch.Procesos != nil {
			data.Dimension4.Procesos = *patch.Procesos
		}
		return data, nil
	default:
		return data, apierr.InvalidPhase(phase)
	}
}

func emptyDatos(datos json.RawMessage) bool {
	switch string(datos) {
	case "", "null", "{}", "[]":
		return true
	default:
		return false
	}
}
