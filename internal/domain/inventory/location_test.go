package inventory_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/freezer-api/internal/domain/inventory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del modelo de ubicaciones de la grilla fija 3×2.
// ──────────────────────────────────────────────────────────────────────────────

func TestLocationLabel_FormatoCanonico(t *testing.T) {
	assert.Equal(t, "T1-P1", inventory.LocationLabel(1, 1))
	assert.Equal(t, "T2-P2", inventory.LocationLabel(2, 2))
	assert.Equal(t, "T3-P1", inventory.LocationLabel(3, 1))
}

func TestLocationDescription_NombresDeTrackYPosition(t *testing.T) {
	cases := []struct {
		track, position int
		want            string
	}{
		{1, 1, "Track 1 (Top), Position 1 (Left)"},
		{1, 2, "Track 1 (Top), Position 2 (Right)"},
		{2, 1, "Track 2 (Middle), Position 1 (Left)"},
		{3, 2, "Track 3 (Bottom), Position 2 (Right)"},
	}
	for _, tc := range cases {
		got := inventory.LocationDescription(tc.track, tc.position)
		assert.Equal(t, tc.want, got, "T%d-P%d", tc.track, tc.position)
	}
}

// Fuera del rango nombrado la descripción cae al número pelado en vez de
// romperse; la validación rechaza esos valores antes de llegar acá.
func TestLocationDescription_FueraDeRangoUsaNumero(t *testing.T) {
	assert.Equal(t, "Track 9 (9), Position 1 (Left)", inventory.LocationDescription(9, 1))
	assert.Equal(t, "Track 1 (Top), Position 7 (7)", inventory.LocationDescription(1, 7))
}

func TestValidateLocation_TodasLasCombinacionesValidas(t *testing.T) {
	for track := 1; track <= inventory.MaxTrack; track++ {
		for position := 1; position <= inventory.MaxPosition; position++ {
			res := inventory.ValidateLocation(track, position)
			assert.True(t, res.Valid, "T%d-P%d debe ser válido", track, position)
			assert.Empty(t, res.Errors)
		}
	}
}

func TestValidateLocation_Invalidas(t *testing.T) {
	cases := []struct {
		name            string
		track, position int
		wantField       string
		wantMsg         string
	}{
		{"track cero es requerido", 0, 1, "track", "Track is required"},
		{"track fuera de rango", 4, 1, "track", "Track must be between 1 and 3"},
		{"track negativo", -1, 1, "track", "Track must be between 1 and 3"},
		{"position cero es requerido", 1, 0, "position", "Position is required"},
		{"position fuera de rango", 1, 3, "position", "Position must be 1 or 2"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := inventory.ValidateLocation(tc.track, tc.position)
			assert.False(t, res.Valid)
			assert.Equal(t, tc.wantMsg, res.Errors[tc.wantField])
		})
	}
}

// Ambos campos inválidos: los dos errores se acumulan, uno por campo.
func TestValidateLocation_AcumulaErroresDeAmbosCampos(t *testing.T) {
	res := inventory.ValidateLocation(0, 0)
	assert.False(t, res.Valid)
	assert.Len(t, res.Errors, 2)
	assert.Equal(t, "Track is required", res.Errors["track"])
	assert.Equal(t, "Position is required", res.Errors["position"])
}

// Las etiquetas de las 6 combinaciones son únicas.
func TestLocationLabel_SinColisiones(t *testing.T) {
	seen := map[string]bool{}
	for track := 1; track <= inventory.MaxTrack; track++ {
		for position := 1; position <= inventory.MaxPosition; position++ {
			label := inventory.LocationLabel(track, position)
			assert.False(t, seen[label], "etiqueta repetida: %s", label)
			seen[label] = true
		}
	}
	assert.Len(t, seen, inventory.MaxTrack*inventory.MaxPosition,
		fmt.Sprintf("deben existir %d etiquetas distintas", inventory.MaxTrack*inventory.MaxPosition))
}
