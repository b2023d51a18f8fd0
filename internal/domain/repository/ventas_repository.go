package repository

import (
	"context"
	"time"

	"github.com/zonik811/serviadmin-api/internal/domain/entity"
)

// Repositorios de lectura sobre las cuatro fuentes de venta. Todas las
// implementaciones devuelven solo documentos en estado finalizado (venta
// efectiva) y respetan el tope `limite`; el orden de la lista no importa
// para los reducers.

// OrdenPOSRepository consultas sobre la colección de órdenes de mostrador.
// El rango se expresa como fechas planas "YYYY-MM-DD" porque así guarda la
// fecha esta colección (ver entity.OrdenPOS).
type OrdenPOSRepository interface {
	ListarPorFechas(ctx context.Context, desde, hasta string, limite int64) ([]entity.OrdenPOS, error)
}

// CitaRepository consultas sobre la colección de citas.
type CitaRepository interface {
	ListarPorRango(ctx context.Context, desde, hasta time.Time, limite int64) ([]entity.Cita, error)
}

// OrdenTrabajoRepository consultas sobre la colección de órdenes de trabajo.
type OrdenTrabajoRepository interface {
	ListarPorRango(ctx context.Context, desde, hasta time.Time, limite int64) ([]entity.OrdenTrabajo, error)
}

// PedidoCatalogoRepository consultas sobre la colección de pedidos de catálogo.
type PedidoCatalogoRepository interface {
	ListarPorRango(ctx context.Context, desde, hasta time.Time, limite int64) ([]entity.PedidoCatalogo, error)
}
