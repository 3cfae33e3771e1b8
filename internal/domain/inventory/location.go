// Package inventory contiene la lógica pura del inventario del congelador:
// el modelo de ubicaciones de la grilla fija 3×2, el motor de validación de
// ítems y el agregador de ocupación por slot. Nada aquí toca la base de datos.
package inventory

import "fmt"

// Dimensiones fijas de la grilla física del congelador.
const (
	MaxTrack    = 3 // filas: 1=Top, 2=Middle, 3=Bottom
	MaxPosition = 2 // columnas: 1=Left, 2=Right
)

var (
	trackNames    = [MaxTrack]string{"Top", "Middle", "Bottom"}
	positionNames = [MaxPosition]string{"Left", "Right"}
)

// LocationLabel devuelve la etiqueta canónica "T{track}-P{position}".
// Es total sobre enteros, pero solo tiene sentido para track∈[1,3] y position∈[1,2].
func LocationLabel(track, position int) string {
	return fmt.Sprintf("T%d-P%d", track, position)
}

// LocationDescription devuelve el texto humano de la ubicación, ej.
// "Track 1 (Top), Position 1 (Left)". Fuera del rango nombrado cae al número
// pelado; la validación ya debió rechazar esos valores antes.
func LocationDescription(track, position int) string {
	trackName := fmt.Sprintf("%d", track)
	if track >= 1 && track <= MaxTrack {
		trackName = trackNames[track-1]
	}
	positionName := fmt.Sprintf("%d", position)
	if position >= 1 && position <= MaxPosition {
		positionName = positionNames[position-1]
	}
	return fmt.Sprintf("Track %d (%s), Position %d (%s)", track, trackName, position, positionName)
}

// ValidateLocation valida los límites del slot. Acumula todos los errores,
// uno por campo (track, position); 0 se trata como "no informado".
func ValidateLocation(track, position int) Result {
	errs := map[string]string{}

	if track == 0 {
		errs["track"] = "Track is required"
	} else if track < 1 || track > MaxTrack {
		errs["track"] = "Track must be between 1 and 3"
	}

	if position == 0 {
		errs["position"] = "Position is required"
	} else if position < 1 || position > MaxPosition {
		errs["position"] = "Position must be 1 or 2"
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}
