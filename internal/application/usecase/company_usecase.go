package usecase

import (
	"context"

	"github.com/jhoicas/iqnext-api/internal/application/dto"
	"github.com/jhoicas/iqnext-api/internal/domain/entity"
	"github.com/jhoicas/iqnext-api/internal/domain/repository"
)

// CompanyUseCase casos de uso de lectura de empresas.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// List devuelve todas las empresas ordenadas por nombre.
func (uc *CompanyUseCase) List(ctx context.Context) ([]dto.CompanyResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, entityToCompanyResponse(c))
	}
	return items, nil
}

func entityToCompanyResponse(c *entity.Company) dto.CompanyResponse {
	return dto.CompanyResponse{
		ID:   c.ID,
		RFC:  c.RFC,
		Name: c.Name,
	}
}
