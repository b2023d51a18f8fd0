package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/zonik811/serviadmin-api/internal/domain/entity"
)

// Fuente etiqueta de la colección de origen de un documento de venta.
type Fuente string

// Las cuatro fuentes de ingreso del negocio.
const (
	FuentePOS      Fuente = "pos"
	FuenteCitas    Fuente = "citas"
	FuenteOTs      Fuente = "ots"
	FuenteCatalogo Fuente = "catalogo"
)

// Fuentes orden canónico de las fuentes (usado para desgloses y fusión).
var Fuentes = []Fuente{FuentePOS, FuenteCitas, FuenteOTs, FuenteCatalogo}

// LineaVenta línea de venta normalizada para los top-N.
type LineaVenta struct {
	Nombre   string
	Cantidad int
	Ingreso  decimal.Decimal
}

// DocumentoVenta capacidad mínima que los reducers necesitan de un documento
// de venta, sea cual sea su colección de origen. Cada fuente tiene su propio
// adaptador con reglas de extracción no generalizables: los esquemas
// subyacentes difieren de verdad y unificarlos en un solo camino genérico
// las desvirtuaría.
type DocumentoVenta interface {
	Fuente() Fuente
	// Monto valor monetario del documento (total, precioAcordado o precioCliente).
	Monto() decimal.Decimal
	CreadoEn() time.Time
	// Lineas líneas de venta; puede ser vacío.
	Lineas() []LineaVenta
	// MetodosPago cero o más métodos declarados; vacío se reporta como "Otros".
	MetodosPago() []string
	// ClienteID identificador plano del cliente; vacío si no hay.
	ClienteID() string
	// ClienteRef relación embebida; tiene precedencia sobre ClienteID.
	ClienteRef() *entity.Cliente
}

// ── Adaptador POS ─────────────────────────────────────────────────────────────

type docPOS struct{ o entity.OrdenPOS }

func (d docPOS) Fuente() Fuente            { return FuentePOS }
func (d docPOS) Monto() decimal.Decimal    { return decimal.NewFromFloat(d.o.Total) }
func (d docPOS) CreadoEn() time.Time       { return d.o.CreadoEn }
func (d docPOS) ClienteID() string         { return d.o.ClienteID }
func (d docPOS) ClienteRef() *entity.Cliente { return d.o.Cliente }

func (d docPOS) Lineas() []LineaVenta {
	lineas := make([]LineaVenta, 0, len(d.o.Items))
	for _, it := range d.o.Items {
		lineas = append(lineas, LineaVenta{
			Nombre:   it.Nombre,
			Cantidad: it.Cantidad,
			Ingreso:  decimal.NewFromFloat(it.Subtotal),
		})
	}
	return lineas
}

// MetodosPago una orden POS puede declarar varios métodos (pago mixto) o uno solo.
func (d docPOS) MetodosPago() []string {
	if len(d.o.MetodosPago) > 0 {
		return d.o.MetodosPago
	}
	if d.o.MetodoPago != "" {
		return []string{d.o.MetodoPago}
	}
	return nil
}

// ── Adaptador citas ───────────────────────────────────────────────────────────

type docCita struct{ c entity.Cita }

func (d docCita) Fuente() Fuente            { return FuenteCitas }
func (d docCita) Monto() decimal.Decimal    { return decimal.NewFromFloat(d.c.PrecioCliente) }
func (d docCita) CreadoEn() time.Time       { return d.c.CreadoEn }
func (d docCita) ClienteID() string         { return d.c.ClienteID }
func (d docCita) ClienteRef() *entity.Cliente { return d.c.Cliente }

// Lineas servicios de la cita; sin servicios detallados cae al tipo de
// servicio con el precio completo.
func (d docCita) Lineas() []LineaVenta {
	if len(d.c.Servicios) == 0 {
		if d.c.TipoServicio == "" {
			return nil
		}
		return []LineaVenta{{
			Nombre:   d.c.TipoServicio,
			Cantidad: 1,
			Ingreso:  decimal.NewFromFloat(d.c.PrecioCliente),
		}}
	}
	lineas := make([]LineaVenta, 0, len(d.c.Servicios))
	for _, s := range d.c.Servicios {
		lineas = append(lineas, LineaVenta{
			Nombre:   s.Nombre,
			Cantidad: 1,
			Ingreso:  decimal.NewFromFloat(s.Precio),
		})
	}
	return lineas
}

func (d docCita) MetodosPago() []string {
	if d.c.MetodoPago == "" {
		return nil
	}
	return []string{d.c.MetodoPago}
}

// ── Adaptador órdenes de trabajo ──────────────────────────────────────────────

type docOT struct{ o entity.OrdenTrabajo }

func (d docOT) Fuente() Fuente            { return FuenteOTs }
func (d docOT) Monto() decimal.Decimal    { return decimal.NewFromFloat(d.o.PrecioAcordado) }
func (d docOT) CreadoEn() time.Time       { return d.o.CreadoEn }
func (d docOT) ClienteID() string         { return d.o.ClienteID }
func (d docOT) ClienteRef() *entity.Cliente { return d.o.Cliente }

// Lineas repuestos de la OT; una OT de solo mano de obra se reporta por el
// tipo de equipo atendido con el precio acordado.
func (d docOT) Lineas() []LineaVenta {
	if len(d.o.Repuestos) == 0 {
		if d.o.TipoEquipo == "" {
			return nil
		}
		return []LineaVenta{{
			Nombre:   d.o.TipoEquipo,
			Cantidad: 1,
			Ingreso:  decimal.NewFromFloat(d.o.PrecioAcordado),
		}}
	}
	lineas := make([]LineaVenta, 0, len(d.o.Repuestos))
	for _, r := range d.o.Repuestos {
		lineas = append(lineas, LineaVenta{
			Nombre:   r.Nombre,
			Cantidad: r.Cantidad,
			Ingreso:  decimal.NewFromFloat(r.Precio).Mul(decimal.NewFromInt(int64(r.Cantidad))),
		})
	}
	return lineas
}

func (d docOT) MetodosPago() []string {
	if d.o.MetodoPago == "" {
		return nil
	}
	return []string{d.o.MetodoPago}
}

// ── Adaptador pedidos de catálogo ─────────────────────────────────────────────

type docCatalogo struct{ p entity.PedidoCatalogo }

func (d docCatalogo) Fuente() Fuente            { return FuenteCatalogo }
func (d docCatalogo) Monto() decimal.Decimal    { return decimal.NewFromFloat(d.p.Total) }
func (d docCatalogo) CreadoEn() time.Time       { return d.p.CreadoEn }
func (d docCatalogo) ClienteID() string         { return d.p.ClienteID }
func (d docCatalogo) ClienteRef() *entity.Cliente { return d.p.Cliente }

func (d docCatalogo) Lineas() []LineaVenta {
	lineas := make([]LineaVenta, 0, len(d.p.Items))
	for _, it := range d.p.Items {
		lineas = append(lineas, LineaVenta{
			Nombre:   it.NombreProducto,
			Cantidad: it.Cantidad,
			Ingreso:  decimal.NewFromFloat(it.Subtotal),
		})
	}
	return lineas
}

func (d docCatalogo) MetodosPago() []string {
	if d.p.MetodoPago == "" {
		return nil
	}
	return []string{d.p.MetodoPago}
}

// ── Envoltura de listas ───────────────────────────────────────────────────────

// EnvolverPOS adapta una lista de órdenes POS al contrato DocumentoVenta.
func EnvolverPOS(ordenes []entity.OrdenPOS) []DocumentoVenta {
	docs := make([]DocumentoVenta, 0, len(ordenes))
	for _, o := range ordenes {
		docs = append(docs, docPOS{o: o})
	}
	return docs
}

// EnvolverCitas adapta una lista de citas.
func EnvolverCitas(citas []entity.Cita) []DocumentoVenta {
	docs := make([]DocumentoVenta, 0, len(citas))
	for _, c := range citas {
		docs = append(docs, docCita{c: c})
	}
	return docs
}

// EnvolverOTs adapta una lista de órdenes de trabajo.
func EnvolverOTs(ots []entity.OrdenTrabajo) []DocumentoVenta {
	docs := make([]DocumentoVenta, 0, len(ots))
	for _, o := range ots {
		docs = append(docs, docOT{o: o})
	}
	return docs
}

// EnvolverCatalogo adapta una lista de pedidos de catálogo.
func EnvolverCatalogo(pedidos []entity.PedidoCatalogo) []DocumentoVenta {
	docs := make([]DocumentoVenta, 0, len(pedidos))
	for _, p := range pedidos {
		docs = append(docs, docCatalogo{p: p})
	}
	return docs
}

// clienteClave devuelve la clave de identidad de cliente de un documento:
// la relación embebida tiene precedencia sobre el id plano.
func clienteClave(doc DocumentoVenta) string {
	if ref := doc.ClienteRef(); ref != nil && ref.ID != "" {
		return ref.ID
	}
	return doc.ClienteID()
}
