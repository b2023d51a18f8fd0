package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/zonik811/serviadmin-api/internal/domain/entity"
	"github.com/zonik811/serviadmin-api/internal/domain/repository"
)

var (
	_ repository.EmpleadoRepository   = (*EmpleadoRepo)(nil)
	_ repository.AsistenciaRepository = (*AsistenciaRepo)(nil)
	_ repository.PermisoRepository    = (*PermisoRepo)(nil)
)

// EmpleadoRepo lectura de la nómina.
type EmpleadoRepo struct {
	col *mongo.Collection
}

// NewEmpleadoRepository construye el adaptador.
func NewEmpleadoRepository(db *mongo.Database) *EmpleadoRepo {
	return &EmpleadoRepo{col: db.Collection(ColeccionEmpleados)}
}

// ListarActivos devuelve los empleados con el flag activo.
func (r *EmpleadoRepo) ListarActivos(ctx context.Context) ([]entity.Empleado, error) {
	cursor, err := r.col.Find(ctx, bson.M{"activo": true})
	if err != nil {
		return nil, fmt.Errorf("mongodb.Empleado.ListarActivos: %w", err)
	}
	defer cursor.Close(ctx)

	var empleados []entity.Empleado
	if err := cursor.All(ctx, &empleados); err != nil {
		return nil, fmt.Errorf("mongodb.Empleado.ListarActivos decode: %w", err)
	}
	if empleados == nil {
		empleados = []entity.Empleado{}
	}
	return empleados, nil
}

// AsistenciaRepo lectura de marcaciones.
type AsistenciaRepo struct {
	col *mongo.Collection
}

// NewAsistenciaRepository construye el adaptador.
func NewAsistenciaRepository(db *mongo.Database) *AsistenciaRepo {
	return &AsistenciaRepo{col: db.Collection(ColeccionAsistencias)}
}

// ListarPorFecha devuelve todas las marcaciones del día indicado.
func (r *AsistenciaRepo) ListarPorFecha(ctx context.Context, fecha string) ([]entity.RegistroAsistencia, error) {
	cursor, err := r.col.Find(ctx, bson.M{"fecha": fecha})
	if err != nil {
		return nil, fmt.Errorf("mongodb.Asistencia.ListarPorFecha: %w", err)
	}
	defer cursor.Close(ctx)

	var registros []entity.RegistroAsistencia
	if err := cursor.All(ctx, &registros); err != nil {
		return nil, fmt.Errorf("mongodb.Asistencia.ListarPorFecha decode: %w", err)
	}
	if registros == nil {
		registros = []entity.RegistroAsistencia{}
	}
	return registros, nil
}

// PermisoRepo lectura de permisos y vacaciones.
type PermisoRepo struct {
	col *mongo.Collection
}

// NewPermisoRepository construye el adaptador.
func NewPermisoRepository(db *mongo.Database) *PermisoRepo {
	return &PermisoRepo{col: db.Collection(ColeccionPermisos)}
}

// ListarVigentes devuelve los permisos aprobados cuya fecha fin no pasó.
func (r *PermisoRepo) ListarVigentes(ctx context.Context, hoy string) ([]entity.Permiso, error) {
	filtro := bson.M{
		"estado":   entity.PermisoAprobado,
		"fechaFin": bson.M{"$gte": hoy},
	}
	cursor, err := r.col.Find(ctx, filtro)
	if err != nil {
		return nil, fmt.Errorf("mongodb.Permiso.ListarVigentes: %w", err)
	}
	defer cursor.Close(ctx)

	var permisos []entity.Permiso
	if err := cursor.All(ctx, &permisos); err != nil {
		return nil, fmt.Errorf("mongodb.Permiso.ListarVigentes decode: %w", err)
	}
	if permisos == nil {
		permisos = []entity.Permiso{}
	}
	return permisos, nil
}
