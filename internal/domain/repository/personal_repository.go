package repository

import (
	"context"

	"github.com/zonik811/serviadmin-api/internal/domain/entity"
)

// EmpleadoRepository consultas sobre la nómina.
type EmpleadoRepository interface {
	// ListarActivos devuelve solo empleados con el flag activo.
	ListarActivos(ctx context.Context) ([]entity.Empleado, error)
}

// AsistenciaRepository consultas sobre marcaciones de asistencia.
type AsistenciaRepository interface {
	// ListarPorFecha devuelve todas las marcaciones del día (entradas y salidas).
	ListarPorFecha(ctx context.Context, fecha string) ([]entity.RegistroAsistencia, error)
}

// PermisoRepository consultas sobre permisos y vacaciones.
type PermisoRepository interface {
	// ListarVigentes devuelve los permisos aprobados cuya fecha fin es hoy o
	// posterior. El reducer verifica además que la fecha inicio ya haya llegado.
	ListarVigentes(ctx context.Context, hoy string) ([]entity.Permiso, error)
}
