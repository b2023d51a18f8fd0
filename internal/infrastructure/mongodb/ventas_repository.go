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

var (
	_ repository.OrdenPOSRepository       = (*OrdenPOSRepo)(nil)
	_ repository.CitaRepository           = (*CitaRepo)(nil)
	_ repository.OrdenTrabajoRepository   = (*OrdenTrabajoRepo)(nil)
	_ repository.PedidoCatalogoRepository = (*PedidoCatalogoRepo)(nil)
)

// OrdenPOSRepo lectura de órdenes de mostrador.
type OrdenPOSRepo struct {
	col *mongo.Collection
}

// NewOrdenPOSRepository construye el adaptador.
func NewOrdenPOSRepository(db *mongo.Database) *OrdenPOSRepo {
	return &OrdenPOSRepo{col: db.Collection(ColeccionOrdenes)}
}

// ListarPorFechas consulta por rango de fecha plana "YYYY-MM-DD", ambos
// extremos inclusive; la comparación lexicográfica de strings coincide con
// el orden cronológico en ese formato. Excluye órdenes canceladas.
func (r *OrdenPOSRepo) ListarPorFechas(ctx context.Context, desde, hasta string, limite int64) ([]entity.OrdenPOS, error) {
	filtro := bson.M{
		"fecha":  bson.M{"$gte": desde, "$lte": hasta},
		"estado": bson.M{"$ne": entity.EstadoCancelada},
	}
	cursor, err := r.col.Find(ctx, filtro, options.Find().SetLimit(limite))
	if err != nil {
		return nil, fmt.Errorf("mongodb.OrdenPOS.ListarPorFechas: %w", err)
	}
	defer cursor.Close(ctx)

	var ordenes []entity.OrdenPOS
	if err := cursor.All(ctx, &ordenes); err != nil {
		return nil, fmt.Errorf("mongodb.OrdenPOS.ListarPorFechas decode: %w", err)
	}
	if ordenes == nil {
		ordenes = []entity.OrdenPOS{}
	}
	return ordenes, nil
}

// CitaRepo lectura de citas.
type CitaRepo struct {
	col *mongo.Collection
}

// NewCitaRepository construye el adaptador.
func NewCitaRepository(db *mongo.Database) *CitaRepo {
	return &CitaRepo{col: db.Collection(ColeccionCitas)}
}

// ListarPorRango devuelve las citas completadas del rango, ambos extremos
// inclusive. Solo el estado completado aporta ingreso.
func (r *CitaRepo) ListarPorRango(ctx context.Context, desde, hasta time.Time, limite int64) ([]entity.Cita, error) {
	filtro := bson.M{
		"creadoEn": bson.M{"$gte": desde, "$lte": hasta},
		"estado":   entity.EstadoCitaCompletada,
	}
	cursor, err := r.col.Find(ctx, filtro, options.Find().SetLimit(limite))
	if err != nil {
		return nil, fmt.Errorf("mongodb.Cita.ListarPorRango: %w", err)
	}
	defer cursor.Close(ctx)

	var citas []entity.Cita
	if err := cursor.All(ctx, &citas); err != nil {
		return nil, fmt.Errorf("mongodb.Cita.ListarPorRango decode: %w", err)
	}
	if citas == nil {
		citas = []entity.Cita{}
	}
	return citas, nil
}

// OrdenTrabajoRepo lectura de órdenes de trabajo.
type OrdenTrabajoRepo struct {
	col *mongo.Collection
}

// NewOrdenTrabajoRepository construye el adaptador.
func NewOrdenTrabajoRepository(db *mongo.Database) *OrdenTrabajoRepo {
	return &OrdenTrabajoRepo{col: db.Collection(ColeccionOTs)}
}

// ListarPorRango devuelve las OTs del rango en estado con ingreso
// (COMPLETADA o POR_PAGAR), ambos extremos inclusive.
func (r *OrdenTrabajoRepo) ListarPorRango(ctx context.Context, desde, hasta time.Time, limite int64) ([]entity.OrdenTrabajo, error) {
	filtro := bson.M{
		"creadoEn": bson.M{"$gte": desde, "$lte": hasta},
		"estado":   bson.M{"$in": []string{entity.EstadoOTCompletada, entity.EstadoOTPorPagar}},
	}
	cursor, err := r.col.Find(ctx, filtro, options.Find().SetLimit(limite))
	if err != nil {
		return nil, fmt.Errorf("mongodb.OrdenTrabajo.ListarPorRango: %w", err)
	}
	defer cursor.Close(ctx)

	var ots []entity.OrdenTrabajo
	if err := cursor.All(ctx, &ots); err != nil {
		return nil, fmt.Errorf("mongodb.OrdenTrabajo.ListarPorRango decode: %w", err)
	}
	if ots == nil {
		ots = []entity.OrdenTrabajo{}
	}
	return ots, nil
}

// PedidoCatalogoRepo lectura de pedidos de catálogo.
type PedidoCatalogoRepo struct {
	col *mongo.Collection
}

// NewPedidoCatalogoRepository construye el adaptador.
func NewPedidoCatalogoRepository(db *mongo.Database) *PedidoCatalogoRepo {
	return &PedidoCatalogoRepo{col: db.Collection(ColeccionCatalogo)}
}

// ListarPorRango devuelve los pedidos no cancelados del rango, ambos
// extremos inclusive.
func (r *PedidoCatalogoRepo) ListarPorRango(ctx context.Context, desde, hasta time.Time, limite int64) ([]entity.PedidoCatalogo, error) {
	filtro := bson.M{
		"creadoEn": bson.M{"$gte": desde, "$lte": hasta},
		"estado":   bson.M{"$ne": entity.EstadoCancelado},
	}
	cursor, err := r.col.Find(ctx, filtro, options.Find().SetLimit(limite))
	if err != nil {
		return nil, fmt.Errorf("mongodb.PedidoCatalogo.ListarPorRango: %w", err)
	}
	defer cursor.Close(ctx)

	var pedidos []entity.PedidoCatalogo
	if err := cursor.All(ctx, &pedidos); err != nil {
		return nil, fmt.Errorf("mongodb.PedidoCatalogo.ListarPorRango decode: %w", err)
	}
	if pedidos == nil {
		pedidos = []entity.PedidoCatalogo{}
	}
	return pedidos, nil
}
