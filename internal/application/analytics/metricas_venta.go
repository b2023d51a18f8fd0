package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/zonik811/serviadmin-api/internal/application/dto"
)

const (
	// topN tamaño de los rankings de productos e ingresos.
	topN = 5
	// MetodoOtros etiqueta para documentos sin método de pago declarado.
	MetodoOtros = "Otros"
	// OffsetHorasPorDefecto ajuste fijo de zona horaria del histograma
	// (Colombia, UTC-5). Configurable vía DASHBOARD_UTC_OFFSET_HOURS; el
	// sistema origen lo tenía cableado y no contempla horario de verano.
	OffsetHorasPorDefecto = -5
)

// acumuladorTop acumula valores por nombre conservando el orden de primera
// aparición, para que los empates del ranking queden en orden de inserción
// (sort estable sobre las claves).
type acumuladorTop struct {
	claves     []string
	cantidades map[string]int
	ingresos   map[string]decimal.Decimal
}

func nuevoAcumuladorTop() *acumuladorTop {
	return &acumuladorTop{
		cantidades: make(map[string]int),
		ingresos:   make(map[string]decimal.Decimal),
	}
}

func (a *acumuladorTop) sumar(nombre string, cantidad int, ingreso decimal.Decimal) {
	if nombre == "" {
		return
	}
	if _, visto := a.cantidades[nombre]; !visto {
		a.claves = append(a.claves, nombre)
		a.ingresos[nombre] = decimal.Zero
	}
	a.cantidades[nombre] += cantidad
	a.ingresos[nombre] = a.ingresos[nombre].Add(ingreso)
}

// topProductos ranking descendente por cantidad, truncado a topN.
func (a *acumuladorTop) topProductos() []dto.TopProductoDTO {
	orden := make([]string, len(a.claves))
	copy(orden, a.claves)
	sort.SliceStable(orden, func(i, j int) bool {
		return a.cantidades[orden[i]] > a.cantidades[orden[j]]
	})
	if len(orden) > topN {
		orden = orden[:topN]
	}
	top := make([]dto.TopProductoDTO, 0, len(orden))
	for _, nombre := range orden {
		top = append(top, dto.TopProductoDTO{Nombre: nombre, Cantidad: a.cantidades[nombre]})
	}
	return top
}

// topIngresos ranking descendente por ingreso, truncado a topN.
func (a *acumuladorTop) topIngresos() []dto.TopIngresoDTO {
	orden := make([]string, len(a.claves))
	copy(orden, a.claves)
	sort.SliceStable(orden, func(i, j int) bool {
		return a.ingresos[orden[i]].GreaterThan(a.ingresos[orden[j]])
	})
	if len(orden) > topN {
		orden = orden[:topN]
	}
	top := make([]dto.TopIngresoDTO, 0, len(orden))
	for _, nombre := range orden {
		top = append(top, dto.TopIngresoDTO{Nombre: nombre, Ingreso: a.ingresos[nombre]})
	}
	return top
}

// MetricasVacias forma completamente poblada con ceros y listas vacías.
func MetricasVacias() dto.MetricasAvanzadasDTO {
	return dto.MetricasAvanzadasDTO{
		IngresoTotal:   decimal.Zero,
		TicketPromedio: decimal.Zero,
		MetodosPago:    map[string]int{},
		TopProductos:   []dto.TopProductoDTO{},
		TopIngresos:    []dto.TopIngresoDTO{},
	}
}

// CalcularMetricasAvanzadas reduce una lista homogénea de documentos de una
// fuente a sus métricas: ingreso total, ticket promedio, histograma de 24
// horas, conteo de métodos de pago, top-5 de productos e ingresos y clientes
// únicos. No muta la entrada y siempre devuelve la forma completa, incluso
// con lista vacía.
//
// El histograma cuenta documentos por hora de creación ajustada con
// offsetHoras (horas negativas envuelven sumando 24); la suma de los 24
// slots siempre es igual al número de documentos.
func CalcularMetricasAvanzadas(docs []DocumentoVenta, offsetHoras int) dto.MetricasAvanzadasDTO {
	m := MetricasVacias()
	m.NumDocumentos = len(docs)

	acum := nuevoAcumuladorTop()
	clientes := make(map[string]struct{})

	for _, doc := range docs {
		m.IngresoTotal = m.IngresoTotal.Add(doc.Monto())

		hora := ((doc.CreadoEn().UTC().Hour()+offsetHoras)%24 + 24) % 24
		m.VentasPorHora[hora]++

		metodos := doc.MetodosPago()
		if len(metodos) == 0 {
			metodos = []string{MetodoOtros}
		}
		for _, metodo := range metodos {
			if metodo == "" {
				metodo = MetodoOtros
			}
			m.MetodosPago[metodo]++
		}

		for _, linea := range doc.Lineas() {
			acum.sumar(linea.Nombre, linea.Cantidad, linea.Ingreso)
		}

		if clave := clienteClave(doc); clave != "" {
			clientes[clave] = struct{}{}
		}
	}

	if m.NumDocumentos > 0 {
		m.TicketPromedio = m.IngresoTotal.Div(decimal.NewFromInt(int64(m.NumDocumentos)))
	}
	m.TopProductos = acum.topProductos()
	m.TopIngresos = acum.topIngresos()
	m.ClientesUnicos = len(clientes)

	return m
}

// FusionarMetricas combina las métricas por fuente en el agregado global:
// suma elemento a elemento los histogramas, une por nombre los métodos de
// pago y los rankings (re-ordenados y re-truncados a 5) y suma los clientes
// únicos de cada fuente. Esa suma cuenta dos veces al cliente que compró por
// dos canales; es la aproximación aceptada del sistema origen.
func FusionarMetricas(porFuente ...dto.MetricasAvanzadasDTO) dto.MetricasAvanzadasDTO {
	global := MetricasVacias()
	acum := nuevoAcumuladorTop()

	for _, m := range porFuente {
		global.IngresoTotal = global.IngresoTotal.Add(m.IngresoTotal)
		global.NumDocumentos += m.NumDocumentos
		global.ClientesUnicos += m.ClientesUnicos

		for i, n := range m.VentasPorHora {
			global.VentasPorHora[i] += n
		}
		for metodo, n := range m.MetodosPago {
			global.MetodosPago[metodo] += n
		}
		for _, p := range m.TopProductos {
			acum.sumar(p.Nombre, p.Cantidad, decimal.Zero)
		}
		for _, t := range m.TopIngresos {
			acum.sumar(t.Nombre, 0, t.Ingreso)
		}
	}

	if global.NumDocumentos > 0 {
		global.TicketPromedio = global.IngresoTotal.Div(decimal.NewFromInt(int64(global.NumDocumentos)))
	}
	global.TopProductos = acum.topProductos()
	global.TopIngresos = acum.topIngresos()

	return global
}
