package entity

import "time"

// Estados que marcan un documento como venta efectiva.
// Los reducers solo suman documentos en estado finalizado; los repositorios
// aplican el filtro al consultar (ver infrastructure/mongodb).
const (
	EstadoCitaCompletada = "completada"
	EstadoOTCompletada   = "COMPLETADA"
	EstadoOTPorPagar     = "POR_PAGAR"
	EstadoCancelado      = "cancelado"
	EstadoCancelada      = "cancelada"
)

// ItemOrden línea de venta de una orden POS.
type ItemOrden struct {
	Nombre   string  `bson:"nombre" json:"nombre"`
	Cantidad int     `bson:"cantidad" json:"cantidad"`
	Subtotal float64 `bson:"subtotal" json:"subtotal"`
}

// OrdenPOS venta de mostrador (punto de venta).
//
// Particularidad heredada del sistema origen: la colección `ordenes` guarda
// la fecha de negocio como string "YYYY-MM-DD" (campo Fecha), mientras que
// las demás colecciones de venta usan timestamp ISO. Esa asimetría se
// conserva tal cual; los filtros de rango sobre esta colección comparan
// strings de fecha.
type OrdenPOS struct {
	ID          string      `bson:"_id,omitempty" json:"id"`
	Fecha       string      `bson:"fecha" json:"fecha"` // YYYY-MM-DD
	CreadoEn    time.Time   `bson:"creadoEn" json:"creadoEn"`
	Total       float64     `bson:"total" json:"total"`
	Items       []ItemOrden `bson:"items,omitempty" json:"items,omitempty"`
	MetodoPago  string      `bson:"metodoPago,omitempty" json:"metodoPago,omitempty"`
	MetodosPago []string    `bson:"metodosPago,omitempty" json:"metodosPago,omitempty"`
	ClienteID   string      `bson:"clienteId,omitempty" json:"clienteId,omitempty"`
	Cliente     *Cliente    `bson:"cliente,omitempty" json:"cliente,omitempty"`
	Estado      string      `bson:"estado" json:"estado"`
}

// ServicioCita servicio prestado dentro de una cita.
type ServicioCita struct {
	Nombre string  `bson:"nombre" json:"nombre"`
	Precio float64 `bson:"precio" json:"precio"`
}

// Cita agendamiento de servicio a domicilio o en sede.
type Cita struct {
	ID            string         `bson:"_id,omitempty" json:"id"`
	CreadoEn      time.Time      `bson:"creadoEn" json:"creadoEn"`
	PrecioCliente float64        `bson:"precioCliente" json:"precioCliente"`
	Servicios     []ServicioCita `bson:"servicios,omitempty" json:"servicios,omitempty"`
	TipoServicio  string         `bson:"tipoServicio,omitempty" json:"tipoServicio,omitempty"`
	MetodoPago    string         `bson:"metodoPago,omitempty" json:"metodoPago,omitempty"`
	ClienteID     string         `bson:"clienteId,omitempty" json:"clienteId,omitempty"`
	Cliente       *Cliente       `bson:"cliente,omitempty" json:"cliente,omitempty"`
	EmpleadoID    string         `bson:"empleadoId,omitempty" json:"empleadoId,omitempty"`
	Estado        string         `bson:"estado" json:"estado"`
}

// Repuesto pieza usada en una orden de trabajo.
type Repuesto struct {
	Nombre   string  `bson:"nombre" json:"nombre"`
	Cantidad int     `bson:"cantidad" json:"cantidad"`
	Precio   float64 `bson:"precio" json:"precio"` // precio unitario
}

// OrdenTrabajo reparación en taller. El precio acordado es el valor de la
// venta; los repuestos son las líneas. Una OT sin repuestos se reporta por
// el tipo de equipo atendido.
type OrdenTrabajo struct {
	ID             string     `bson:"_id,omitempty" json:"id"`
	CreadoEn       time.Time  `bson:"creadoEn" json:"creadoEn"`
	PrecioAcordado float64    `bson:"precioAcordado" json:"precioAcordado"`
	Repuestos      []Repuesto `bson:"repuestos,omitempty" json:"repuestos,omitempty"`
	TipoEquipo     string     `bson:"tipoEquipo,omitempty" json:"tipoEquipo,omitempty"`
	MetodoPago     string     `bson:"metodoPago,omitempty" json:"metodoPago,omitempty"`
	ClienteID      string     `bson:"clienteId,omitempty" json:"clienteId,omitempty"`
	Cliente        *Cliente   `bson:"cliente,omitempty" json:"cliente,omitempty"`
	TecnicoID      string     `bson:"tecnicoId,omitempty" json:"tecnicoId,omitempty"`
	Estado         string     `bson:"estado" json:"estado"`
}

// ItemCatalogo línea de un pedido de catálogo.
type ItemCatalogo struct {
	NombreProducto string  `bson:"nombreProducto" json:"nombreProducto"`
	Cantidad       int     `bson:"cantidad" json:"cantidad"`
	Subtotal       float64 `bson:"subtotal" json:"subtotal"`
}

// PedidoCatalogo pedido de productos por catálogo.
type PedidoCatalogo struct {
	ID         string         `bson:"_id,omitempty" json:"id"`
	CreadoEn   time.Time      `bson:"creadoEn" json:"creadoEn"`
	Total      float64        `bson:"total" json:"total"`
	Items      []ItemCatalogo `bson:"items,omitempty" json:"items,omitempty"`
	MetodoPago string         `bson:"metodoPago,omitempty" json:"metodoPago,omitempty"`
	ClienteID  string         `bson:"clienteId,omitempty" json:"clienteId,omitempty"`
	Cliente    *Cliente       `bson:"cliente,omitempty" json:"cliente,omitempty"`
	Estado     string         `bson:"estado" json:"estado"`
}
