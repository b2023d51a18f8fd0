package analytics_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zonik811/serviadmin-api/internal/application/analytics"
	"github.com/zonik811/serviadmin-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del reducer de ventas: CalcularMetricasAvanzadas y FusionarMetricas.
// ──────────────────────────────────────────────────────────────────────────────

func TestCalcularMetricasAvanzadas_ListaVacia(t *testing.T) {
	m := analytics.CalcularMetricasAvanzadas(nil, analytics.OffsetHorasPorDefecto)

	assert.True(t, m.IngresoTotal.IsZero())
	assert.Zero(t, m.NumDocumentos)
	assert.True(t, m.TicketPromedio.IsZero(), "sin documentos el ticket promedio es 0, nunca divide")
	assert.NotNil(t, m.MetodosPago, "la forma debe venir completa aun sin documentos")
	assert.Empty(t, m.MetodosPago)
	assert.NotNil(t, m.TopProductos)
	assert.Empty(t, m.TopProductos)
	assert.NotNil(t, m.TopIngresos)
	assert.Empty(t, m.TopIngresos)
	assert.Zero(t, m.ClientesUnicos)
	for i, n := range m.VentasPorHora {
		assert.Zerof(t, n, "slot %d debe estar en cero", i)
	}
}

// El histograma ajusta la hora UTC con el offset fijo del negocio (-5):
// un documento creado a las 14:00 UTC cae en el slot 9 (hora Colombia).
func TestCalcularMetricasAvanzadas_HistogramaConOffset(t *testing.T) {
	docs := analytics.EnvolverPOS([]entity.OrdenPOS{
		{Total: 1000, CreadoEn: time.Date(2025, 3, 12, 14, 0, 0, 0, time.UTC)},
	})

	m := analytics.CalcularMetricasAvanzadas(docs, -5)

	assert.Equal(t, 1, m.VentasPorHora[9])
}

// Horas que quedan negativas tras el offset envuelven sumando 24:
// 02:00 UTC con offset -5 cae en el slot 21 del día anterior local.
func TestCalcularMetricasAvanzadas_HistogramaEnvuelveNegativos(t *testing.T) {
	docs := analytics.EnvolverPOS([]entity.OrdenPOS{
		{Total: 1000, CreadoEn: time.Date(2025, 3, 12, 2, 0, 0, 0, time.UTC)},
	})

	m := analytics.CalcularMetricasAvanzadas(docs, -5)

	assert.Equal(t, 1, m.VentasPorHora[21])
}

// Invariante del histograma: la suma de los 24 slots es el número de documentos.
func TestCalcularMetricasAvanzadas_HistogramaSumaIgualDocumentos(t *testing.T) {
	ordenes := make([]entity.OrdenPOS, 0, 30)
	for i := 0; i < 30; i++ {
		ordenes = append(ordenes, entity.OrdenPOS{
			Total:    100,
			CreadoEn: time.Date(2025, 3, 12, i%24, 15, 0, 0, time.UTC),
		})
	}

	m := analytics.CalcularMetricasAvanzadas(analytics.EnvolverPOS(ordenes), -5)

	suma := 0
	for _, n := range m.VentasPorHora {
		suma += n
	}
	assert.Equal(t, m.NumDocumentos, suma)
}

func TestCalcularMetricasAvanzadas_TicketPromedioExacto(t *testing.T) {
	docs := analytics.EnvolverPOS([]entity.OrdenPOS{
		{Total: 100000},
		{Total: 50000},
	})

	m := analytics.CalcularMetricasAvanzadas(docs, -5)

	assert.True(t, m.IngresoTotal.Equal(decimal.NewFromInt(150000)), "ingreso total: %s", m.IngresoTotal)
	assert.True(t, m.TicketPromedio.Equal(decimal.NewFromInt(75000)), "ticket promedio: %s", m.TicketPromedio)
}

// Documentos sin método de pago declarado cuentan bajo "Otros"; una orden POS
// con pago mixto aporta una ocurrencia por cada método.
func TestCalcularMetricasAvanzadas_MetodosPago(t *testing.T) {
	docs := analytics.EnvolverPOS([]entity.OrdenPOS{
		{Total: 100, MetodoPago: "efectivo"},
		{Total: 200, MetodosPago: []string{"efectivo", "nequi"}}, // pago mixto
		{Total: 300}, // sin método
	})

	m := analytics.CalcularMetricasAvanzadas(docs, -5)

	assert.Equal(t, 2, m.MetodosPago["efectivo"])
	assert.Equal(t, 1, m.MetodosPago["nequi"])
	assert.Equal(t, 1, m.MetodosPago[analytics.MetodoOtros])
}

// Los rankings se truncan a 5 y los empates conservan el orden de primera
// aparición (sort estable).
func TestCalcularMetricasAvanzadas_TopProductosTruncaYEstable(t *testing.T) {
	ordenes := []entity.OrdenPOS{{
		Total: 1000,
		Items: []entity.ItemOrden{
			{Nombre: "cable", Cantidad: 7, Subtotal: 70},
			{Nombre: "pantalla", Cantidad: 3, Subtotal: 300},
			{Nombre: "bateria", Cantidad: 3, Subtotal: 200}, // empata con pantalla
			{Nombre: "cargador", Cantidad: 2, Subtotal: 40},
			{Nombre: "mica", Cantidad: 1, Subtotal: 10},
			{Nombre: "estuche", Cantidad: 1, Subtotal: 15},
			{Nombre: "teclado", Cantidad: 1, Subtotal: 50},
		},
	}}

	m := analytics.CalcularMetricasAvanzadas(analytics.EnvolverPOS(ordenes), -5)

	require.Len(t, m.TopProductos, 5, "el ranking se trunca a 5")
	assert.Equal(t, "cable", m.TopProductos[0].Nombre)
	assert.Equal(t, "pantalla", m.TopProductos[1].Nombre,
		"en empate gana el que apareció primero")
	assert.Equal(t, "bateria", m.TopProductos[2].Nombre)
}

// Líneas con el mismo nombre acumulan cantidad e ingreso entre documentos.
func TestCalcularMetricasAvanzadas_AcumulaLineasPorNombre(t *testing.T) {
	ordenes := []entity.OrdenPOS{
		{Total: 100, Items: []entity.ItemOrden{{Nombre: "cable", Cantidad: 2, Subtotal: 20}}},
		{Total: 200, Items: []entity.ItemOrden{{Nombre: "cable", Cantidad: 3, Subtotal: 30}}},
	}

	m := analytics.CalcularMetricasAvanzadas(analytics.EnvolverPOS(ordenes), -5)

	require.Len(t, m.TopProductos, 1)
	assert.Equal(t, 5, m.TopProductos[0].Cantidad)
	require.Len(t, m.TopIngresos, 1)
	assert.True(t, m.TopIngresos[0].Ingreso.Equal(decimal.NewFromInt(50)))
}

// Identidad del cliente: la relación embebida tiene precedencia sobre el id
// plano, y el mismo cliente en varios documentos cuenta una sola vez.
func TestCalcularMetricasAvanzadas_ClientesUnicos(t *testing.T) {
	ordenes := []entity.OrdenPOS{
		{Total: 100, ClienteID: "c1"},
		{Total: 200, Cliente: &entity.Cliente{ID: "c1"}}, // mismo cliente, vía embebido
		{Total: 300, ClienteID: "c2"},
		{Total: 400}, // anónimo, no cuenta
	}

	m := analytics.CalcularMetricasAvanzadas(analytics.EnvolverPOS(ordenes), -5)

	assert.Equal(t, 2, m.ClientesUnicos)
}

// Una cita sin servicios detallados se reporta por su tipo de servicio con el
// precio completo; una OT sin repuestos, por el tipo de equipo atendido.
func TestCalcularMetricasAvanzadas_LineasDeRespaldoPorFuente(t *testing.T) {
	citas := analytics.EnvolverCitas([]entity.Cita{
		{PrecioCliente: 80000, TipoServicio: "Mantenimiento"},
	})
	ots := analytics.EnvolverOTs([]entity.OrdenTrabajo{
		{PrecioAcordado: 120000, TipoEquipo: "Portátil"},
	})

	mCitas := analytics.CalcularMetricasAvanzadas(citas, -5)
	require.Len(t, mCitas.TopProductos, 1)
	assert.Equal(t, "Mantenimiento", mCitas.TopProductos[0].Nombre)
	assert.True(t, mCitas.TopIngresos[0].Ingreso.Equal(decimal.NewFromInt(80000)))

	mOTs := analytics.CalcularMetricasAvanzadas(ots, -5)
	require.Len(t, mOTs.TopProductos, 1)
	assert.Equal(t, "Portátil", mOTs.TopProductos[0].Nombre)
	assert.True(t, mOTs.TopIngresos[0].Ingreso.Equal(decimal.NewFromInt(120000)))
}

// El ingreso de un repuesto de OT es precio unitario × cantidad.
func TestCalcularMetricasAvanzadas_RepuestosMultiplicanPorCantidad(t *testing.T) {
	ots := analytics.EnvolverOTs([]entity.OrdenTrabajo{{
		PrecioAcordado: 90000,
		Repuestos:      []entity.Repuesto{{Nombre: "pantalla", Cantidad: 3, Precio: 25000}},
	}})

	m := analytics.CalcularMetricasAvanzadas(ots, -5)

	require.Len(t, m.TopIngresos, 1)
	assert.True(t, m.TopIngresos[0].Ingreso.Equal(decimal.NewFromInt(75000)),
		"ingreso del repuesto: %s", m.TopIngresos[0].Ingreso)
}

// ── FusionarMetricas ──────────────────────────────────────────────────────────

// Escenario de referencia: una orden POS de 100.000 a las 14:00 UTC en
// efectivo más una cita de 50.000 sin método de pago. El agregado global debe
// sumar ingresos, promediar el ticket sobre los documentos totales y unir los
// métodos de pago.
func TestFusionarMetricas_EscenarioReferencia(t *testing.T) {
	creado := time.Date(2025, 3, 12, 14, 0, 0, 0, time.UTC)

	mPOS := analytics.CalcularMetricasAvanzadas(analytics.EnvolverPOS([]entity.OrdenPOS{
		{Total: 100000, CreadoEn: creado, MetodoPago: "efectivo", ClienteID: "c1"},
	}), -5)
	mCitas := analytics.CalcularMetricasAvanzadas(analytics.EnvolverCitas([]entity.Cita{
		{PrecioCliente: 50000, CreadoEn: creado, ClienteID: "c1"},
	}), -5)

	global := analytics.FusionarMetricas(mPOS, mCitas)

	assert.True(t, global.IngresoTotal.Equal(decimal.NewFromInt(150000)))
	assert.Equal(t, 2, global.NumDocumentos)
	assert.True(t, global.TicketPromedio.Equal(decimal.NewFromInt(75000)))
	assert.Equal(t, 2, global.VentasPorHora[9], "ambos documentos caen en el slot 9 local")
	assert.Equal(t, 1, global.MetodosPago["efectivo"])
	assert.Equal(t, 1, global.MetodosPago[analytics.MetodoOtros])

	// El mismo cliente compró por dos canales: la fusión suma los únicos por
	// fuente y lo cuenta dos veces. Aproximación aceptada del sistema origen.
	assert.Equal(t, 2, global.ClientesUnicos)
}

// La fusión re-ordena y re-trunca los rankings combinados a 5.
func TestFusionarMetricas_ReordenaRankings(t *testing.T) {
	ordenes := make([]entity.OrdenPOS, 0, 4)
	for i := 0; i < 4; i++ {
		ordenes = append(ordenes, entity.OrdenPOS{
			Total: 100,
			Items: []entity.ItemOrden{{Nombre: fmt.Sprintf("pos-%d", i), Cantidad: i + 1, Subtotal: 10}},
		})
	}
	mPOS := analytics.CalcularMetricasAvanzadas(analytics.EnvolverPOS(ordenes), -5)

	mCatalogo := analytics.CalcularMetricasAvanzadas(analytics.EnvolverCatalogo([]entity.PedidoCatalogo{{
		Total: 500,
		Items: []entity.ItemCatalogo{{NombreProducto: "estrella", Cantidad: 50, Subtotal: 500}},
	}}), -5)

	global := analytics.FusionarMetricas(mPOS, mCatalogo)

	require.Len(t, global.TopProductos, 5)
	assert.Equal(t, "estrella", global.TopProductos[0].Nombre,
		"el producto dominante de otra fuente debe encabezar el ranking global")
}

func TestFusionarMetricas_SinFuentes(t *testing.T) {
	global := analytics.FusionarMetricas()

	assert.True(t, global.IngresoTotal.IsZero())
	assert.True(t, global.TicketPromedio.IsZero())
	assert.Empty(t, global.TopProductos)
}
