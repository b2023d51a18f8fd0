package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/zonik811/serviadmin-api/internal/application/dto"
	"github.com/zonik811/serviadmin-api/internal/domain/entity"
)

// maxAlertasStock tope de productos en la lista de alertas.
const maxAlertasStock = 10

// CalcularMetricasInventario recorre el catálogo una sola vez y acumula la
// valorización a costo y a venta, el conteo de bajo stock (estricto:
// stock < mínimo, con mínimo por defecto 5), hasta 10 alertas y la
// distribución por categoría. Foto instantánea, sin ponderaciones.
func CalcularMetricasInventario(productos []entity.Producto) dto.EstadisticasInventario {
	m := dto.EstadisticasInventario{
		TotalProductos: len(productos),
		ValorCosto:     decimal.Zero,
		ValorVenta:     decimal.Zero,
		PorCategoria:   map[string]int{},
		Alertas:        []dto.AlertaStockDTO{},
	}

	for _, p := range productos {
		stock := decimal.NewFromInt(int64(p.Stock))
		m.ValorCosto = m.ValorCosto.Add(stock.Mul(decimal.NewFromFloat(p.PrecioCompra)))
		m.ValorVenta = m.ValorVenta.Add(stock.Mul(decimal.NewFromFloat(p.PrecioVenta)))

		if p.Categoria != "" {
			m.PorCategoria[p.Categoria]++
		}

		if p.Stock < p.UmbralStock() {
			m.BajoStock++
			if len(m.Alertas) < maxAlertasStock {
				m.Alertas = append(m.Alertas, dto.AlertaStockDTO{
					ProductoID:  p.ID,
					Nombre:      p.Nombre,
					SKU:         p.SKU,
					Stock:       p.Stock,
					StockMinimo: p.UmbralStock(),
				})
			}
		}
	}

	return m
}
