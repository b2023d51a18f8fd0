package dto

import "github.com/shopspring/decimal"

// EstadisticasDTO respuesta de GET /api/dashboard/estadisticas.
// Objeto único y completamente poblado: ante cualquier fallo de consulta el
// use case devuelve esta misma forma con ceros y listas vacías, de modo que
// la capa de presentación nunca necesita null-checks.
type EstadisticasDTO struct {
	Ventas     EstadisticasVentas     `json:"ventas"`
	Clientes   EstadisticasClientes   `json:"clientes"`
	Empleados  EstadisticasEmpleados  `json:"empleados"`
	Inventario EstadisticasInventario `json:"inventario"`
}

// DesgloseFuente total de ventas por cada una de las cuatro fuentes.
type DesgloseFuente struct {
	POS      decimal.Decimal `json:"pos"`
	Citas    decimal.Decimal `json:"citas"`
	OTs      decimal.Decimal `json:"ots"`
	Catalogo decimal.Decimal `json:"catalogo"`
}

// MetricasAvanzadasDTO métricas calculadas sobre una lista de documentos de
// venta (de una fuente o del agregado global).
type MetricasAvanzadasDTO struct {
	IngresoTotal   decimal.Decimal `json:"ingresoTotal"`
	NumDocumentos  int             `json:"numDocumentos"`
	TicketPromedio decimal.Decimal `json:"ticketPromedio"` // 0 cuando no hay documentos
	VentasPorHora  [24]int         `json:"ventasPorHora"`  // histograma hora local (offset fijo configurable)
	MetodosPago    map[string]int  `json:"metodosPago"`    // ocurrencias por documento, no ingreso
	TopProductos   []TopProductoDTO `json:"topProductos"`  // máx 5, descendente por cantidad
	TopIngresos    []TopIngresoDTO  `json:"topIngresos"`   // máx 5, descendente por ingreso

	// ClientesUnicos en el agregado global es la suma de los únicos de cada
	// fuente: un cliente que compró por dos canales cuenta dos veces. Es una
	// aproximación aceptada del sistema origen.
	ClientesUnicos int `json:"clientesUnicos"`
}

// TopProductoDTO producto con su cantidad vendida acumulada.
type TopProductoDTO struct {
	Nombre   string `json:"nombre"`
	Cantidad int    `json:"cantidad"`
}

// TopIngresoDTO línea de venta con su ingreso acumulado.
type TopIngresoDTO struct {
	Nombre  string          `json:"nombre"`
	Ingreso decimal.Decimal `json:"ingreso"`
}

// EstadisticasVentas totales por ventana y métricas avanzadas.
type EstadisticasVentas struct {
	TotalMes         decimal.Decimal `json:"totalMes"`
	TotalSemana      decimal.Decimal `json:"totalSemana"`
	TotalHoy         decimal.Decimal `json:"totalHoy"`
	TotalAyer        decimal.Decimal `json:"totalAyer"`
	TotalMesAnterior decimal.Decimal `json:"totalMesAnterior"`
	// CambioPorcentual variación del mes actual frente al anterior, en %.
	CambioPorcentual decimal.Decimal `json:"cambioPorcentual"`

	PorFuenteMes    DesgloseFuente `json:"porFuenteMes"`
	PorFuenteSemana DesgloseFuente `json:"porFuenteSemana"`
	PorFuenteHoy    DesgloseFuente `json:"porFuenteHoy"`
	PorFuenteAyer   DesgloseFuente `json:"porFuenteAyer"`

	// Métricas avanzadas del mes en curso: global y por fuente
	// (claves: pos, citas, ots, catalogo).
	MetricasGlobales  MetricasAvanzadasDTO            `json:"metricasGlobales"`
	MetricasPorFuente map[string]MetricasAvanzadasDTO `json:"metricasPorFuente"`
}

// ClienteTopDTO cliente con su gasto acumulado del mes.
type ClienteTopDTO struct {
	Nombre      string          `json:"nombre"`
	TotalGastado decimal.Decimal `json:"totalGastado"`
	Compras     int             `json:"compras"`
}

// CiudadTopDTO ciudad con su número de transacciones del mes.
type CiudadTopDTO struct {
	Ciudad        string `json:"ciudad"`
	Transacciones int    `json:"transacciones"`
}

// EstadisticasClientes resumen de la base de clientes.
type EstadisticasClientes struct {
	TotalClientes int64           `json:"totalClientes"`
	NuevosMes     int64           `json:"nuevosMes"`
	ActivosMes    int             `json:"activosMes"` // clientes distintos con compra este mes
	TopClientes   []ClienteTopDTO `json:"topClientes"`
	TopCiudades   []CiudadTopDTO  `json:"topCiudades"`
}

// Estados posibles de un empleado en el día.
const (
	EstadoEmpleadoPresente   = "PRESENTE"
	EstadoEmpleadoTarde      = "TARDE"
	EstadoEmpleadoAusente    = "AUSENTE"
	EstadoEmpleadoVacaciones = "VACACIONES"
	EstadoEmpleadoPermiso    = "PERMISO"
)

// EstadoEmpleadoDTO estado del día de un empleado concreto.
type EstadoEmpleadoDTO struct {
	EmpleadoID  string `json:"empleadoId"`
	Nombre      string `json:"nombre"`
	Cargo       string `json:"cargo"`
	Estado      string `json:"estado"`
	HoraEntrada string `json:"horaEntrada,omitempty"`
}

// EmpleadoTopDTO empleado con su carga de trabajo del mes
// (citas asignadas + órdenes de trabajo como técnico responsable).
type EmpleadoTopDTO struct {
	Nombre   string `json:"nombre"`
	Cargo    string `json:"cargo"`
	Trabajos int    `json:"trabajos"`
}

// EstadisticasEmpleados asistencia, carga y costo de la nómina.
// Presentes incluye a los que llegaron tarde; Tarde es el subconjunto.
// Presentes + Ausentes + Vacaciones + Permisos == TotalActivos.
type EstadisticasEmpleados struct {
	TotalActivos int `json:"totalActivos"`
	Presentes    int `json:"presentes"`
	Tarde        int `json:"tarde"`
	Ausentes     int `json:"ausentes"`
	Vacaciones   int `json:"vacaciones"`
	Permisos     int `json:"permisos"`

	Detalle      []EstadoEmpleadoDTO `json:"detalle"`
	TopEmpleados []EmpleadoTopDTO    `json:"topEmpleados"`
	PorCargo     map[string]int      `json:"porCargo"`

	CostoDiarioEstimado decimal.Decimal `json:"costoDiarioEstimado"` // tarifaHora × 8, sin ausencias programadas
	HorasProgramadas    int             `json:"horasProgramadas"`    // (activos − en licencia) × 8

	// El sistema origen nunca derivó estas horas desde las marcaciones;
	// se exponen en cero con el estado de cálculo explícito.
	HorasTrabajadas   int    `json:"horasTrabajadas"`
	HorasExtra        int    `json:"horasExtra"`
	EstadoCalculoHoras string `json:"estadoCalculoHoras"` // "no_calculado"
}

// AlertaStockDTO producto por debajo de su umbral mínimo.
type AlertaStockDTO struct {
	ProductoID  string `json:"productoId"`
	Nombre      string `json:"nombre"`
	SKU         string `json:"sku"`
	Stock       int    `json:"stock"`
	StockMinimo int    `json:"stockMinimo"`
}

// EstadisticasInventario foto instantánea del inventario.
type EstadisticasInventario struct {
	TotalProductos int              `json:"totalProductos"`
	BajoStock      int              `json:"bajoStock"`
	ValorCosto     decimal.Decimal  `json:"valorCosto"` // Σ stock × precioCompra
	ValorVenta     decimal.Decimal  `json:"valorVenta"` // Σ stock × precioVenta
	PorCategoria   map[string]int   `json:"porCategoria"`
	Alertas        []AlertaStockDTO `json:"alertas"` // máx 10
}
