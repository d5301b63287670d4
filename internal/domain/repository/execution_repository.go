package repository

import (
	"context"
	"time"

	"github.com/jhoicas/iqnext-api/internal/domain/entity"
)

// ExecutionRepository define el puerto de persistencia para Execution (DIP).
type ExecutionRepository interface {
	// Insert agrega una ejecución y devuelve el id asignado. Si timestamp es nil se usa
	// la hora UTC del servidor de base de datos; si status es nil se usa 0.
	// Devuelve domain.ErrNotFound si el proceso no existe.
	Insert(ctx context.Context, processID int, timestamp *time.Time, status *uint8) (int, error)
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id int) (*entity.Execution, error)
	// ListByProcess devuelve las ejecuciones del proceso, la más reciente primero.
	ListByProcess(ctx context.Context, processID int) ([]*entity.Execution, error)
}
