package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/zonik811/serviadmin-api/internal/application/dto"
)

// EstadisticasVacias objeto de respaldo con la forma completa de la
// respuesta: todo numérico en cero y toda lista vacía. Es lo que recibe la
// presentación cuando cualquier consulta de la agregación falla.
func EstadisticasVacias() *dto.EstadisticasDTO {
	desgloseCero := dto.DesgloseFuente{
		POS:      decimal.Zero,
		Citas:    decimal.Zero,
		OTs:      decimal.Zero,
		Catalogo: decimal.Zero,
	}
	metricasPorFuente := make(map[string]dto.MetricasAvanzadasDTO, len(Fuentes))
	for _, f := range Fuentes {
		metricasPorFuente[string(f)] = MetricasVacias()
	}

	return &dto.EstadisticasDTO{
		Ventas: dto.EstadisticasVentas{
			TotalMes:          decimal.Zero,
			TotalSemana:       decimal.Zero,
			TotalHoy:          decimal.Zero,
			TotalAyer:         decimal.Zero,
			TotalMesAnterior:  decimal.Zero,
			CambioPorcentual:  decimal.Zero,
			PorFuenteMes:      desgloseCero,
			PorFuenteSemana:   desgloseCero,
			PorFuenteHoy:      desgloseCero,
			PorFuenteAyer:     desgloseCero,
			MetricasGlobales:  MetricasVacias(),
			MetricasPorFuente: metricasPorFuente,
		},
		Clientes: dto.EstadisticasClientes{
			TopClientes: []dto.ClienteTopDTO{},
			TopCiudades: []dto.CiudadTopDTO{},
		},
		Empleados: dto.EstadisticasEmpleados{
			Detalle:             []dto.EstadoEmpleadoDTO{},
			TopEmpleados:        []dto.EmpleadoTopDTO{},
			PorCargo:            map[string]int{},
			CostoDiarioEstimado: decimal.Zero,
			EstadoCalculoHoras:  EstadoHorasNoCalculado,
		},
		Inventario: dto.EstadisticasInventario{
			ValorCosto:   decimal.Zero,
			ValorVenta:   decimal.Zero,
			PorCategoria: map[string]int{},
			Alertas:      []dto.AlertaStockDTO{},
		},
	}
}
