package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/zonik811/serviadmin-api/internal/application/analytics"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de CalcularRangosFecha — las cinco ventanas de calendario en doble
// representación (time.Time + fecha plana "YYYY-MM-DD").
// ──────────────────────────────────────────────────────────────────────────────

// Instante de referencia: miércoles 12 de marzo de 2025, 15:30 UTC.
var ahoraMiercoles = time.Date(2025, 3, 12, 15, 30, 0, 0, time.UTC)

func TestCalcularRangosFecha_Hoy(t *testing.T) {
	r := analytics.CalcularRangosFecha(ahoraMiercoles)

	assert.Equal(t, time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), r.HoyInicio)
	assert.Equal(t, time.Date(2025, 3, 12, 23, 59, 59, 999999999, time.UTC), r.HoyFin,
		"el fin del día debe ser el último nanosegundo, no la medianoche siguiente")
	assert.Equal(t, "2025-03-12", r.HoyFecha)
}

func TestCalcularRangosFecha_Ayer(t *testing.T) {
	r := analytics.CalcularRangosFecha(ahoraMiercoles)

	assert.Equal(t, time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), r.AyerInicio)
	assert.Equal(t, time.Date(2025, 3, 11, 23, 59, 59, 999999999, time.UTC), r.AyerFin)
	assert.Equal(t, "2025-03-11", r.AyerFecha)
}

// La semana inicia el lunes: un miércoles retrocede 2 días.
func TestCalcularRangosFecha_SemanaDesdeMiercoles(t *testing.T) {
	r := analytics.CalcularRangosFecha(ahoraMiercoles)

	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), r.SemanaInicio)
	assert.Equal(t, "2025-03-10", r.SemanaInicioFecha)
}

// Caso especial del domingo: time.Weekday trae 0, así que retrocede 6 días
// al lunes anterior, no 0.
func TestCalcularRangosFecha_SemanaDesdeDomingo(t *testing.T) {
	domingo := time.Date(2025, 3, 16, 10, 0, 0, 0, time.UTC)
	r := analytics.CalcularRangosFecha(domingo)

	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), r.SemanaInicio,
		"un domingo pertenece a la semana que inició el lunes anterior")
}

// Un lunes no retrocede: la semana inicia ese mismo día.
func TestCalcularRangosFecha_SemanaDesdeLunes(t *testing.T) {
	lunes := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	r := analytics.CalcularRangosFecha(lunes)

	assert.Equal(t, r.HoyInicio, r.SemanaInicio)
}

func TestCalcularRangosFecha_MesYMesAnterior(t *testing.T) {
	r := analytics.CalcularRangosFecha(ahoraMiercoles)

	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), r.MesInicio)
	assert.Equal(t, r.HoyFin, r.MesFin, "el mes en curso termina hoy, no a fin de mes")

	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), r.MesAnteriorInicio)
	assert.Equal(t, time.Date(2025, 2, 28, 23, 59, 59, 999999999, time.UTC), r.MesAnteriorFin)
	assert.Equal(t, "2025-02-01", r.MesAnteriorInicioFecha)
	assert.Equal(t, "2025-02-28", r.MesAnteriorFinFecha)
}

// En enero el mes anterior cruza el año.
func TestCalcularRangosFecha_MesAnteriorCruzaAnio(t *testing.T) {
	enero := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	r := analytics.CalcularRangosFecha(enero)

	assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), r.MesAnteriorInicio)
	assert.Equal(t, "2024-12-31", r.MesAnteriorFinFecha)
}

// Función pura: el mismo instante produce siempre los mismos límites.
func TestCalcularRangosFecha_Determinista(t *testing.T) {
	r1 := analytics.CalcularRangosFecha(ahoraMiercoles)
	r2 := analytics.CalcularRangosFecha(ahoraMiercoles)

	assert.Equal(t, r1, r2)
}
