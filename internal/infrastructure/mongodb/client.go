// Package mongodb implementa los repositorios de lectura del dashboard sobre
// la base documental. Cada adaptador traduce el contrato abstracto de
// consulta (rangos $gte/$lte, pertenencia $in, exclusión $ne y tope de
// resultados) a filtros de mongo-driver.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/zonik811/serviadmin-api/pkg/config"
)

// Nombres de colección del sistema origen.
const (
	ColeccionOrdenes     = "ordenes"
	ColeccionCitas       = "citas"
	ColeccionOTs         = "ordenesTrabajo"
	ColeccionCatalogo    = "pedidosCatalogo"
	ColeccionEmpleados   = "empleados"
	ColeccionAsistencias = "asistencias"
	ColeccionPermisos    = "permisos"
	ColeccionProductos   = "productos"
	ColeccionClientes    = "clientes"
)

// NewDatabase conecta al servidor y verifica la conexión con un ping.
func NewDatabase(ctx context.Context, cfg config.MongoConfig) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("mongodb: conectar: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("mongodb: ping: %w", err)
	}
	return client.Database(cfg.Database), nil
}
