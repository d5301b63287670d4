package repository

import (
	"context"

	"github.com/jhoicas/iqnext-api/internal/domain/entity"
)

// ProcessRepository define el puerto de persistencia para Process (DIP).
type ProcessRepository interface {
	// Create persiste el proceso y completa process.ID.
	// Devuelve domain.ErrDuplicate si ya existe el nombre en la empresa y
	// domain.ErrCompanyNotFound si la empresa no existe.
	Create(ctx context.Context, process *entity.Process) error
	// GetByToken devuelve (nil, nil) si no existe un proceso con ese token.
	GetByToken(ctx context.Context, token string) (*entity.Process, error)
	// GetTokenByID devuelve "" si el proceso no existe o no tiene token.
	GetTokenByID(ctx context.Context, id int) (string, error)
	Exists(ctx context.Context, id int) (bool, error)
	// ListByCompany devuelve los procesos de la empresa ordenados por nombre.
	ListByCompany(ctx context.Context, companyID int) ([]*entity.Process, error)
}
