// Package pdf genera el reporte imprimible de las estadísticas del
// dashboard (resumen de ventas, rankings y estado de nómina e inventario).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio  │  Fecha de generación          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  VENTAS: totales por ventana + variación mensual             │
//	│  TABLA: Top productos del mes (nombre | cantidad)            │
//	│  TABLA: Top clientes del mes (nombre | compras | total)      │
//	│  EMPLEADOS: asistencia del día + costo estimado              │
//	│  INVENTARIO: valorización + alertas de stock                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/zonik811/serviadmin-api/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// impresora formatea números con separadores de miles al estilo es-CO.
var impresora = message.NewPrinter(language.Spanish)

// moneda formatea un decimal como pesos sin decimales: "$ 1.234.567".
func moneda(d decimal.Decimal) string {
	return impresora.Sprintf("$ %v", number.Decimal(d.InexactFloat64(), number.MaxFractionDigits(0)))
}

// ── Generator ─────────────────────────────────────────────────────────────────

// ReportePDFGenerator genera el reporte de estadísticas usando Maroto v2.
type ReportePDFGenerator struct {
	nombreNegocio string
}

// NewReportePDFGenerator construye el generador.
func NewReportePDFGenerator(nombreNegocio string) *ReportePDFGenerator {
	return &ReportePDFGenerator{nombreNegocio: nombreNegocio}
}

// GenerarReporte genera el PDF del objeto de estadísticas y devuelve sus bytes.
func (g *ReportePDFGenerator) GenerarReporte(
	_ context.Context,
	est *dto.EstadisticasDTO,
	generado time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Estadísticas", true).
		WithAuthor(g.nombreNegocio, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(generado))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(seccionRow("VENTAS"))
	m.AddRows(ventasRows(est.Ventas)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))

	m.AddRows(seccionRow("TOP PRODUCTOS DEL MES"))
	m.AddRows(topProductosRows(est.Ventas.MetricasGlobales.TopProductos)...)

	m.AddRows(seccionRow("TOP CLIENTES DEL MES"))
	m.AddRows(topClientesRows(est.Clientes.TopClientes)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))

	m.AddRows(seccionRow("EMPLEADOS"))
	m.AddRows(empleadosRows(est.Empleados)...)

	m.AddRows(seccionRow("INVENTARIO"))
	m.AddRows(inventarioRows(est.Inventario)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *ReportePDFGenerator) headerRow(generado time.Time) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New(g.nombreNegocio, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de estadísticas del dashboard", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+generado.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func seccionRow(titulo string) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(titulo, props.Text{
				Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
			}),
		),
	)
}

func kpiRow(etiqueta, valor string) core.Row {
	return row.New(5).Add(
		col.New(6).Add(text.New(etiqueta, props.Text{Size: 8, Color: colorGray})),
		col.New(6).Add(text.New(valor, props.Text{Size: 8, Align: align.Right})),
	)
}

func ventasRows(v dto.EstadisticasVentas) []core.Row {
	return []core.Row{
		kpiRow("Ventas del mes", moneda(v.TotalMes)),
		kpiRow("Ventas de la semana", moneda(v.TotalSemana)),
		kpiRow("Ventas de hoy", moneda(v.TotalHoy)),
		kpiRow("Ventas de ayer", moneda(v.TotalAyer)),
		kpiRow("Mes anterior", moneda(v.TotalMesAnterior)),
		kpiRow("Variación mensual", v.CambioPorcentual.Round(1).String()+" %"),
		kpiRow("Ticket promedio del mes", moneda(v.MetricasGlobales.TicketPromedio)),
	}
}

func topProductosRows(top []dto.TopProductoDTO) []core.Row {
	if len(top) == 0 {
		return []core.Row{kpiRow("Sin ventas registradas este mes", "—")}
	}
	rows := make([]core.Row, 0, len(top))
	for _, p := range top {
		rows = append(rows, kpiRow(p.Nombre, impresora.Sprintf("%d uds", p.Cantidad)))
	}
	return rows
}

func topClientesRows(top []dto.ClienteTopDTO) []core.Row {
	if len(top) == 0 {
		return []core.Row{kpiRow("Sin compras registradas este mes", "—")}
	}
	rows := make([]core.Row, 0, len(top))
	for _, c := range top {
		rows = append(rows, kpiRow(
			impresora.Sprintf("%s (%d compras)", c.Nombre, c.Compras),
			moneda(c.TotalGastado),
		))
	}
	return rows
}

func empleadosRows(e dto.EstadisticasEmpleados) []core.Row {
	return []core.Row{
		kpiRow("Nómina activa", impresora.Sprintf("%d", e.TotalActivos)),
		kpiRow("Presentes (incluye tarde)", impresora.Sprintf("%d", e.Presentes)),
		kpiRow("Llegadas tarde", impresora.Sprintf("%d", e.Tarde)),
		kpiRow("Ausentes", impresora.Sprintf("%d", e.Ausentes)),
		kpiRow("En vacaciones / con permiso", impresora.Sprintf("%d / %d", e.Vacaciones, e.Permisos)),
		kpiRow("Costo diario estimado", moneda(e.CostoDiarioEstimado)),
	}
}

func inventarioRows(i dto.EstadisticasInventario) []core.Row {
	rows := []core.Row{
		kpiRow("Productos", impresora.Sprintf("%d", i.TotalProductos)),
		kpiRow("Bajo stock", impresora.Sprintf("%d", i.BajoStock)),
		kpiRow("Valor a costo", moneda(i.ValorCosto)),
		kpiRow("Valor a venta", moneda(i.ValorVenta)),
	}
	for _, a := range i.Alertas {
		rows = append(rows, kpiRow(
			impresora.Sprintf("⚠ %s (%s)", a.Nombre, a.SKU),
			impresora.Sprintf("%d / mín %d", a.Stock, a.StockMinimo),
		))
	}
	return rows
}
