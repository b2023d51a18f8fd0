package repository

import (
	"context"

	"github.com/zonik811/serviadmin-api/internal/domain/entity"
)

// ProductoRepository consultas sobre el catálogo de productos.
type ProductoRepository interface {
	ListarTodos(ctx context.Context, limite int64) ([]entity.Producto, error)
}
