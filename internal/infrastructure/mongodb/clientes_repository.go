package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/zonik811/serviadmin-api/internal/domain/entity"
	"github.com/zonik811/serviadmin-api/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo lectura de la base de clientes.
type ClienteRepo struct {
	col *mongo.Collection
}

// NewClienteRepository construye el adaptador.
func NewClienteRepository(db *mongo.Database) *ClienteRepo {
	return &ClienteRepo{col: db.Collection(ColeccionClientes)}
}

// ListarTodos devuelve la base de clientes hasta el tope dado.
func (r *ClienteRepo) ListarTodos(ctx context.Context, limite int64) ([]entity.Cliente, error) {
	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetLimit(limite))
	if err != nil {
		return nil, fmt.Errorf("mongodb.Cliente.ListarTodos: %w", err)
	}
	defer cursor.Close(ctx)

	var clientes []entity.Cliente
	if err := cursor.All(ctx, &clientes); err != nil {
		return nil, fmt.Errorf("mongodb.Cliente.ListarTodos decode: %w", err)
	}
	if clientes == nil {
		clientes = []entity.Cliente{}
	}
	return clientes, nil
}

// ContarNuevos cuenta clientes creados desde la fecha dada (inclusive).
func (r *ClienteRepo) ContarNuevos(ctx context.Context, desde time.Time) (int64, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{"creadoEn": bson.M{"$gte": desde}}, options.Count())
	if err != nil {
		return 0, fmt.Errorf("mongodb.Cliente.ContarNuevos: %w", err)
	}
	return n, nil
}
