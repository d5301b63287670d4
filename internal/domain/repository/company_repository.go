package repository

import (
	"context"

	"github.com/jhoicas/iqnext-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	// List devuelve todas las empresas ordenadas por nombre.
	List(ctx context.Context) ([]*entity.Company, error)
	Exists(ctx context.Context, id int) (bool, error)
}
