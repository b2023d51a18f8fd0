package repository

import (
	"context"
	"time"

	"github.com/zonik811/serviadmin-api/internal/domain/entity"
)

// ClienteRepository consultas sobre la base de clientes.
type ClienteRepository interface {
	ListarTodos(ctx context.Context, limite int64) ([]entity.Cliente, error)
	// ContarNuevos cuenta clientes creados desde la fecha dada (inclusive).
	ContarNuevos(ctx context.Context, desde time.Time) (int64, error)
}
