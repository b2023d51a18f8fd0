// Package analytics implementa el agregador de estadísticas del dashboard:
// resolución de ventanas de tiempo, reducers por fuente de venta, fusión
// global y los reducers de clientes, empleados e inventario.
package analytics

import "time"

const formatoFecha = "2006-01-02"

// RangosFecha límites de las cinco ventanas de calendario que consume el
// dashboard, en doble representación: time.Time para las colecciones que
// guardan timestamps ISO y strings "YYYY-MM-DD" para la colección de
// órdenes POS, que guarda la fecha plana. Las dos representaciones deben
// convivir porque las colecciones del sistema origen realmente difieren.
type RangosFecha struct {
	HoyInicio time.Time
	HoyFin    time.Time

	AyerInicio time.Time
	AyerFin    time.Time

	// Semana en curso, iniciando el lunes.
	SemanaInicio time.Time

	MesInicio time.Time
	MesFin    time.Time

	MesAnteriorInicio time.Time
	MesAnteriorFin    time.Time

	// Representación plana de las mismas ventanas.
	HoyFecha               string
	AyerFecha              string
	SemanaInicioFecha      string
	MesInicioFecha         string
	MesFinFecha            string
	MesAnteriorInicioFecha string
	MesAnteriorFinFecha    string
}

// CalcularRangosFecha resuelve todas las ventanas a partir de `ahora`.
// Función pura: con un mismo instante siempre produce los mismos límites.
//
// La semana inicia el lunes: time.Weekday trae domingo como 0, así que un
// domingo retrocede 6 días en lugar de 0.
func CalcularRangosFecha(ahora time.Time) RangosFecha {
	hoyInicio := time.Date(ahora.Year(), ahora.Month(), ahora.Day(), 0, 0, 0, 0, ahora.Location())
	hoyFin := hoyInicio.Add(24*time.Hour - time.Nanosecond)

	ayerInicio := hoyInicio.AddDate(0, 0, -1)
	ayerFin := hoyInicio.Add(-time.Nanosecond)

	retroceso := int(ahora.Weekday()) - 1
	if retroceso < 0 {
		retroceso = 6 // domingo
	}
	semanaInicio := hoyInicio.AddDate(0, 0, -retroceso)

	mesInicio := time.Date(ahora.Year(), ahora.Month(), 1, 0, 0, 0, 0, ahora.Location())
	mesFin := hoyFin

	mesAnteriorInicio := mesInicio.AddDate(0, -1, 0)
	mesAnteriorFin := mesInicio.Add(-time.Nanosecond)

	return RangosFecha{
		HoyInicio: hoyInicio,
		HoyFin:    hoyFin,

		AyerInicio: ayerInicio,
		AyerFin:    ayerFin,

		SemanaInicio: semanaInicio,

		MesInicio: mesInicio,
		MesFin:    mesFin,

		MesAnteriorInicio: mesAnteriorInicio,
		MesAnteriorFin:    mesAnteriorFin,

		HoyFecha:               hoyInicio.Format(formatoFecha),
		AyerFecha:              ayerInicio.Format(formatoFecha),
		SemanaInicioFecha:      semanaInicio.Format(formatoFecha),
		MesInicioFecha:         mesInicio.Format(formatoFecha),
		MesFinFecha:            hoyInicio.Format(formatoFecha),
		MesAnteriorInicioFecha: mesAnteriorInicio.Format(formatoFecha),
		MesAnteriorFinFecha:    mesAnteriorFin.Format(formatoFecha),
	}
}
