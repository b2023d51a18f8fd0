package analytics

import (
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/zonik811/serviadmin-api/internal/application/dto"
	"github.com/zonik811/serviadmin-api/internal/domain/entity"
)

const (
	horasJornada = 8
	// horaLimiteEntrada hora a partir de la cual una entrada cuenta como tarde.
	horaLimiteEntrada = 9
	// EstadoHorasNoCalculado el sistema origen nunca derivó horas trabajadas
	// ni extras desde las marcaciones; el campo se expone explícitamente
	// como no calculado en lugar de inventar la derivación.
	EstadoHorasNoCalculado = "no_calculado"
)

// CalcularMetricasEmpleados reduce nómina, asistencia del día, carga del mes
// y ausencias vigentes al resumen de empleados.
//
// Cada empleado recibe exactamente un estado, con precedencia estricta:
// VACACIONES > PERMISO > TARDE > PRESENTE > AUSENTE. Es regla de negocio:
// una vacación vigente gana aunque exista marcación de entrada ese día.
// Los conteos resultantes particionan la nómina activa:
// presentes (incluye tarde) + ausentes + vacaciones + permisos == totalActivos.
func CalcularMetricasEmpleados(
	empleados []entity.Empleado,
	asistencias []entity.RegistroAsistencia,
	citasMes []entity.Cita,
	otsMes []entity.OrdenTrabajo,
	permisos []entity.Permiso,
	hoy string,
) dto.EstadisticasEmpleados {
	m := dto.EstadisticasEmpleados{
		TotalActivos:        len(empleados),
		Detalle:             []dto.EstadoEmpleadoDTO{},
		TopEmpleados:        []dto.EmpleadoTopDTO{},
		PorCargo:            map[string]int{},
		CostoDiarioEstimado: decimal.Zero,
		EstadoCalculoHoras:  EstadoHorasNoCalculado,
	}

	// Ausencias que cubren el día de hoy, por empleado. El repositorio ya
	// filtró estado aprobado y fechaFin >= hoy; falta verificar el inicio.
	enVacaciones := make(map[string]bool)
	conPermiso := make(map[string]bool)
	for _, p := range permisos {
		if p.Estado != entity.PermisoAprobado || p.FechaInicio > hoy {
			continue
		}
		switch p.Tipo {
		case entity.PermisoTipoVacaciones:
			enVacaciones[p.EmpleadoID] = true
		case entity.PermisoTipoPermiso:
			conPermiso[p.EmpleadoID] = true
		}
	}

	// Primera marcación de ENTRADA del día por empleado.
	entradas := make(map[string]string)
	for _, a := range asistencias {
		if a.Tipo != entity.AsistenciaEntrada {
			continue
		}
		if _, ya := entradas[a.EmpleadoID]; !ya {
			entradas[a.EmpleadoID] = a.Hora
		}
	}

	enLicencia := 0
	for _, emp := range empleados {
		m.PorCargo[emp.Cargo]++

		estado := dto.EstadoEmpleadoAusente
		hora, marco := entradas[emp.ID]
		switch {
		case enVacaciones[emp.ID]:
			estado = dto.EstadoEmpleadoVacaciones
		case conPermiso[emp.ID]:
			estado = dto.EstadoEmpleadoPermiso
		case marco && entradaTarde(hora):
			estado = dto.EstadoEmpleadoTarde
		case marco:
			estado = dto.EstadoEmpleadoPresente
		}

		detalle := dto.EstadoEmpleadoDTO{
			EmpleadoID: emp.ID,
			Nombre:     emp.Nombre,
			Cargo:      emp.Cargo,
			Estado:     estado,
		}

		switch estado {
		case dto.EstadoEmpleadoVacaciones:
			m.Vacaciones++
			enLicencia++
		case dto.EstadoEmpleadoPermiso:
			m.Permisos++
			enLicencia++
		case dto.EstadoEmpleadoTarde:
			m.Presentes++ // tarde cuenta dentro de presentes
			m.Tarde++
			detalle.HoraEntrada = hora
		case dto.EstadoEmpleadoPresente:
			m.Presentes++
			detalle.HoraEntrada = hora
		default:
			m.Ausentes++
		}

		// Costo diario estimado: jornada completa de quien no está en licencia.
		if estado != dto.EstadoEmpleadoVacaciones && estado != dto.EstadoEmpleadoPermiso {
			m.CostoDiarioEstimado = m.CostoDiarioEstimado.Add(
				decimal.NewFromFloat(emp.TarifaHora).Mul(decimal.NewFromInt(horasJornada)))
		}

		m.Detalle = append(m.Detalle, detalle)
	}

	m.HorasProgramadas = (m.TotalActivos - enLicencia) * horasJornada

	// Top por carga del mes: citas asignadas + OTs como técnico responsable.
	trabajos := make(map[string]int)
	for _, c := range citasMes {
		if c.EmpleadoID != "" {
			trabajos[c.EmpleadoID]++
		}
	}
	for _, ot := range otsMes {
		if ot.TecnicoID != "" {
			trabajos[ot.TecnicoID]++
		}
	}

	candidatos := make([]entity.Empleado, 0, len(empleados))
	for _, emp := range empleados {
		if trabajos[emp.ID] > 0 {
			candidatos = append(candidatos, emp)
		}
	}
	sort.SliceStable(candidatos, func(i, j int) bool {
		return trabajos[candidatos[i].ID] > trabajos[candidatos[j].ID]
	})
	if len(candidatos) > topN {
		candidatos = candidatos[:topN]
	}
	for _, emp := range candidatos {
		m.TopEmpleados = append(m.TopEmpleados, dto.EmpleadoTopDTO{
			Nombre:   emp.Nombre,
			Cargo:    emp.Cargo,
			Trabajos: trabajos[emp.ID],
		})
	}

	return m
}

// entradaTarde una entrada es tarde desde las 9 con minutos corridos
// ("09:01" en adelante); "09:00" en punto todavía cuenta como puntual.
func entradaTarde(hora string) bool {
	partes := strings.SplitN(hora, ":", 2)
	if len(partes) != 2 {
		return false
	}
	h, errH := strconv.Atoi(partes[0])
	min, errM := strconv.Atoi(partes[1])
	if errH != nil || errM != nil {
		return false
	}
	return h >= horaLimiteEntrada && min > 0
}
