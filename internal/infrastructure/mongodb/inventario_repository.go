package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/zonik811/serviadmin-api/internal/domain/entity"
	"github.com/zonik811/serviadmin-api/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo lectura del catálogo de productos.
type ProductoRepo struct {
	col *mongo.Collection
}

// NewProductoRepository construye el adaptador.
func NewProductoRepository(db *mongo.Database) *ProductoRepo {
	return &ProductoRepo{col: db.Collection(ColeccionProductos)}
}

// ListarTodos devuelve el catálogo completo hasta el tope dado.
func (r *ProductoRepo) ListarTodos(ctx context.Context, limite int64) ([]entity.Producto, error) {
	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetLimit(limite))
	if err != nil {
		return nil, fmt.Errorf("mongodb.Producto.ListarTodos: %w", err)
	}
	defer cursor.Close(ctx)

	var productos []entity.Producto
	if err := cursor.All(ctx, &productos); err != nil {
		return nil, fmt.Errorf("mongodb.Producto.ListarTodos decode: %w", err)
	}
	if productos == nil {
		productos = []entity.Producto{}
	}
	return productos, nil
}
