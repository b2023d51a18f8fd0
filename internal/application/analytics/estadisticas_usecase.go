package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/zonik811/serviadmin-api/internal/application/dto"
	"github.com/zonik811/serviadmin-api/internal/domain/entity"
	"github.com/zonik811/serviadmin-api/internal/domain/repository"
	"github.com/zonik811/serviadmin-api/pkg/logger"
)

// limiteConsultaPorDefecto tope de documentos por consulta.
const limiteConsultaPorDefecto = 5000

// Deps dependencias del agregador. Todos los repositorios se inyectan para
// poder sustituirlos por fakes en memoria en los tests.
type Deps struct {
	POS         repository.OrdenPOSRepository
	Citas       repository.CitaRepository
	OTs         repository.OrdenTrabajoRepository
	Catalogo    repository.PedidoCatalogoRepository
	Empleados   repository.EmpleadoRepository
	Asistencias repository.AsistenciaRepository
	Permisos    repository.PermisoRepository
	Productos   repository.ProductoRepository
	Clientes    repository.ClienteRepository

	Log *logger.Logger

	// OffsetHoras ajuste fijo del histograma horario (normalmente -5).
	OffsetHoras int
	// LimiteConsulta tope de documentos por consulta; 0 usa el valor por defecto.
	LimiteConsulta int64
	// Ahora reloj inyectable; nil usa time.Now.
	Ahora func() time.Time
}

// EstadisticasUseCase agrega las cinco colecciones del negocio en el objeto
// único de estadísticas del dashboard. Operación de solo lectura, repetible
// y sin efectos persistentes: no crea ni muta ningún documento.
type EstadisticasUseCase struct {
	deps Deps
}

// NewEstadisticasUseCase construye el caso de uso.
func NewEstadisticasUseCase(deps Deps) *EstadisticasUseCase {
	if deps.Ahora == nil {
		deps.Ahora = time.Now
	}
	if deps.LimiteConsulta <= 0 {
		deps.LimiteConsulta = limiteConsultaPorDefecto
	}
	return &EstadisticasUseCase{deps: deps}
}

// ventanaVentas documentos de las cuatro fuentes para una misma ventana.
type ventanaVentas struct {
	pos      []entity.OrdenPOS
	citas    []entity.Cita
	ots      []entity.OrdenTrabajo
	catalogo []entity.PedidoCatalogo
}

// docs unión de las cuatro fuentes de la ventana, en orden canónico.
func (v *ventanaVentas) docs() []DocumentoVenta {
	union := make([]DocumentoVenta, 0, len(v.pos)+len(v.citas)+len(v.ots)+len(v.catalogo))
	union = append(union, EnvolverPOS(v.pos)...)
	union = append(union, EnvolverCitas(v.citas)...)
	union = append(union, EnvolverOTs(v.ots)...)
	union = append(union, EnvolverCatalogo(v.catalogo)...)
	return union
}

// desglose total por fuente y total de la ventana.
func (v *ventanaVentas) desglose() (dto.DesgloseFuente, decimal.Decimal) {
	sumar := func(docs []DocumentoVenta) decimal.Decimal {
		total := decimal.Zero
		for _, d := range docs {
			total = total.Add(d.Monto())
		}
		return total
	}
	d := dto.DesgloseFuente{
		POS:      sumar(EnvolverPOS(v.pos)),
		Citas:    sumar(EnvolverCitas(v.citas)),
		OTs:      sumar(EnvolverOTs(v.ots)),
		Catalogo: sumar(EnvolverCatalogo(v.catalogo)),
	}
	total := d.POS.Add(d.Citas).Add(d.OTs).Add(d.Catalogo)
	return d, total
}

// ObtenerEstadisticas ejecuta la agregación completa.
//
// Política de fallos todo-o-nada: cualquier consulta fallida aborta la
// agregación entera; se registra el error y se devuelve el objeto de
// respaldo en ceros. No hay resultados parciales ni reintentos.
func (uc *EstadisticasUseCase) ObtenerEstadisticas(ctx context.Context) *dto.EstadisticasDTO {
	est, err := uc.obtener(ctx)
	if err != nil {
		uc.deps.Log.Error().Err(err).Msg("agregación del dashboard fallida; se devuelve el objeto en ceros")
		return EstadisticasVacias()
	}
	return est
}

func (uc *EstadisticasUseCase) obtener(ctx context.Context) (*dto.EstadisticasDTO, error) {
	rangos := CalcularRangosFecha(uc.deps.Ahora())

	var (
		mes, semana, hoy, ayer, mesAnterior ventanaVentas

		empleados   []entity.Empleado
		asistencias []entity.RegistroAsistencia
		permisos    []entity.Permiso
		productos   []entity.Producto
		clientes    []entity.Cliente
		nuevosMes   int64
	)

	g, gctx := errgroup.WithContext(ctx)

	// Una consulta por fuente por ventana; las ventanas son independientes
	// entre sí y las consultas de una misma ventana corren concurrentes.
	uc.cargarVentana(gctx, g, &mes, "mes", rangos.MesInicio, rangos.MesFin, rangos.MesInicioFecha, rangos.MesFinFecha)
	uc.cargarVentana(gctx, g, &semana, "semana", rangos.SemanaInicio, rangos.HoyFin, rangos.SemanaInicioFecha, rangos.HoyFecha)
	uc.cargarVentana(gctx, g, &hoy, "hoy", rangos.HoyInicio, rangos.HoyFin, rangos.HoyFecha, rangos.HoyFecha)
	uc.cargarVentana(gctx, g, &ayer, "ayer", rangos.AyerInicio, rangos.AyerFin, rangos.AyerFecha, rangos.AyerFecha)
	uc.cargarVentana(gctx, g, &mesAnterior, "mesAnterior", rangos.MesAnteriorInicio, rangos.MesAnteriorFin, rangos.MesAnteriorInicioFecha, rangos.MesAnteriorFinFecha)

	g.Go(func() (err error) {
		empleados, err = uc.deps.Empleados.ListarActivos(gctx)
		return envolverErr("empleados activos", err)
	})
	g.Go(func() (err error) {
		asistencias, err = uc.deps.Asistencias.ListarPorFecha(gctx, rangos.HoyFecha)
		return envolverErr("asistencias de hoy", err)
	})
	g.Go(func() (err error) {
		permisos, err = uc.deps.Permisos.ListarVigentes(gctx, rangos.HoyFecha)
		return envolverErr("permisos vigentes", err)
	})
	g.Go(func() (err error) {
		productos, err = uc.deps.Productos.ListarTodos(gctx, uc.deps.LimiteConsulta)
		return envolverErr("productos", err)
	})
	g.Go(func() (err error) {
		clientes, err = uc.deps.Clientes.ListarTodos(gctx, uc.deps.LimiteConsulta)
		return envolverErr("clientes", err)
	})
	g.Go(func() (err error) {
		nuevosMes, err = uc.deps.Clientes.ContarNuevos(gctx, rangos.MesInicio)
		return envolverErr("clientes nuevos", err)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// ── Ventas ────────────────────────────────────────────────────────────────
	porFuente := map[string]dto.MetricasAvanzadasDTO{
		string(FuentePOS):      CalcularMetricasAvanzadas(EnvolverPOS(mes.pos), uc.deps.OffsetHoras),
		string(FuenteCitas):    CalcularMetricasAvanzadas(EnvolverCitas(mes.citas), uc.deps.OffsetHoras),
		string(FuenteOTs):      CalcularMetricasAvanzadas(EnvolverOTs(mes.ots), uc.deps.OffsetHoras),
		string(FuenteCatalogo): CalcularMetricasAvanzadas(EnvolverCatalogo(mes.catalogo), uc.deps.OffsetHoras),
	}
	globales := FusionarMetricas(
		porFuente[string(FuentePOS)],
		porFuente[string(FuenteCitas)],
		porFuente[string(FuenteOTs)],
		porFuente[string(FuenteCatalogo)],
	)

	desgloseMes, totalMes := mes.desglose()
	desgloseSemana, totalSemana := semana.desglose()
	desgloseHoy, totalHoy := hoy.desglose()
	desgloseAyer, totalAyer := ayer.desglose()
	_, totalMesAnterior := mesAnterior.desglose()

	ventas := dto.EstadisticasVentas{
		TotalMes:          totalMes,
		TotalSemana:       totalSemana,
		TotalHoy:          totalHoy,
		TotalAyer:         totalAyer,
		TotalMesAnterior:  totalMesAnterior,
		CambioPorcentual:  cambioPorcentual(totalMes, totalMesAnterior),
		PorFuenteMes:      desgloseMes,
		PorFuenteSemana:   desgloseSemana,
		PorFuenteHoy:      desgloseHoy,
		PorFuenteAyer:     desgloseAyer,
		MetricasGlobales:  globales,
		MetricasPorFuente: porFuente,
	}

	// ── Clientes ──────────────────────────────────────────────────────────────
	directorio := make(map[string]entity.Cliente, len(clientes))
	for _, c := range clientes {
		directorio[c.ID] = c
	}
	estClientes := CalcularMetricasClientes(mes.docs(), directorio)
	estClientes.TotalClientes = int64(len(clientes))
	estClientes.NuevosMes = nuevosMes

	// ── Empleados e inventario ────────────────────────────────────────────────
	estEmpleados := CalcularMetricasEmpleados(empleados, asistencias, mes.citas, mes.ots, permisos, rangos.HoyFecha)
	estInventario := CalcularMetricasInventario(productos)

	return &dto.EstadisticasDTO{
		Ventas:     ventas,
		Clientes:   estClientes,
		Empleados:  estEmpleados,
		Inventario: estInventario,
	}, nil
}

// cargarVentana lanza las cuatro consultas de la ventana en el grupo.
// Cada goroutine escribe un campo distinto del destino; no comparten estado.
func (uc *EstadisticasUseCase) cargarVentana(
	ctx context.Context,
	g *errgroup.Group,
	destino *ventanaVentas,
	etiqueta string,
	desde, hasta time.Time,
	desdeFecha, hastaFecha string,
) {
	limite := uc.deps.LimiteConsulta

	g.Go(func() (err error) {
		destino.pos, err = uc.deps.POS.ListarPorFechas(ctx, desdeFecha, hastaFecha, limite)
		return envolverErr("ordenes POS "+etiqueta, err)
	})
	g.Go(func() (err error) {
		destino.citas, err = uc.deps.Citas.ListarPorRango(ctx, desde, hasta, limite)
		return envolverErr("citas "+etiqueta, err)
	})
	g.Go(func() (err error) {
		destino.ots, err = uc.deps.OTs.ListarPorRango(ctx, desde, hasta, limite)
		return envolverErr("ordenes de trabajo "+etiqueta, err)
	})
	g.Go(func() (err error) {
		destino.catalogo, err = uc.deps.Catalogo.ListarPorRango(ctx, desde, hasta, limite)
		return envolverErr("pedidos de catalogo "+etiqueta, err)
	})
}

// cambioPorcentual variación porcentual del mes actual frente al anterior.
// Mes anterior en cero: 0% si el actual también es cero, 100% si hubo venta.
func cambioPorcentual(actual, anterior decimal.Decimal) decimal.Decimal {
	if anterior.IsZero() {
		if actual.IsZero() {
			return decimal.Zero
		}
		return decimal.NewFromInt(100)
	}
	return actual.Sub(anterior).Div(anterior).Mul(decimal.NewFromInt(100))
}

func envolverErr(contexto string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("estadisticas: %s: %w", contexto, err)
}
