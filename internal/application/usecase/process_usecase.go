package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jhoicas/iqnext-api/internal/application/dto"
	"github.com/jhoicas/iqnext-api/internal/domain"
	"github.com/jhoicas/iqnext-api/internal/domain/entity"
	"github.com/jhoicas/iqnext-api/internal/domain/repository"
	"github.com/jhoicas/iqnext-api/pkg/normalize"
)

// RegisterExecutionPath ruta pública del registro de ejecuciones, usada en los curl de ejemplo.
const RegisterExecutionPath = "/RegistrarEjecucion"

// ProcessUseCase aplica reglas de negocio para procesos.
type ProcessUseCase struct {
	processes repository.ProcessRepository
	companies repository.CompanyRepository
	newToken  func() string
}

// NewProcessUseCase construye el caso de uso.
func NewProcessUseCase(processes repository.ProcessRepository, companies repository.CompanyRepository) *ProcessUseCase {
	return &ProcessUseCase{
		processes: processes,
		companies: companies,
		newToken:  func() string { return uuid.New().String() },
	}
}

// ListByCompany devuelve los procesos de la empresa ordenados por nombre.
func (uc *ProcessUseCase) ListByCompany(ctx context.Context, companyID int) ([]dto.ProcessResponse, error) {
	list, err := uc.processes.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProcessResponse, 0, len(list))
	for _, p := range list {
		items = append(items, dto.ProcessResponse{
			ID:        p.ID,
			CompanyID: p.CompanyID,
			Name:      p.Name,
			Token:     p.Token,
		})
	}
	return items, nil
}

// Create valida la empresa, genera el UUID externo en el servidor y persiste el proceso.
// Un nombre repetido dentro de la empresa lo rechaza el constraint único (domain.ErrDuplicate).
func (uc *ProcessUseCase) Create(ctx context.Context, in dto.CreateProcessRequest) (*dto.CreatedProcessResponse, error) {
	name := normalize.Name(in.Name)
	if in.CompanyID <= 0 || name == "" {
		return nil, fmt.Errorf("%w: empresaId y nombre son obligatorios", domain.ErrInvalidInput)
	}

	ok, err := uc.companies.Exists(ctx, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrCompanyNotFound
	}

	p := &entity.Process{
		CompanyID: in.CompanyID,
		Name:      name,
		Token:     uc.newToken(),
	}
	if err := uc.processes.Create(ctx, p); err != nil {
		return nil, err
	}
	return &dto.CreatedProcessResponse{
		ID:        p.ID,
		CompanyID: p.CompanyID,
		Name:      p.Name,
		Token:     p.Token,
	}, nil
}

// RegisterCurl arma dos comandos curl listos para registrar ejecuciones (estatus 1 y 0)
// contra baseURL, que es el esquema y host públicos de la petición actual.
func (uc *ProcessUseCase) RegisterCurl(ctx context.Context, processID int, baseURL string) (*dto.RegisterCurlResponse, error) {
	token, err := uc.processes.GetTokenByID(ctx, processID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(token) == "" {
		return nil, fmt.Errorf("%w: proceso %d no existe o no tiene UUID", domain.ErrNotFound, processID)
	}

	endpoint := strings.TrimRight(baseURL, "/") + RegisterExecutionPath
	return &dto.RegisterCurlResponse{
		ProcessID:   processID,
		Token:       token,
		CurlStatus1: buildCurl(endpoint, token, entity.ExecutionStatusSuccess),
		CurlStatus0: buildCurl(endpoint, token, entity.ExecutionStatusPending),
	}, nil
}

func buildCurl(endpoint, token string, status uint8) string {
	payload, _ := json.Marshal(struct {
		Status uint8  `json:"estatus"`
		Token  string `json:"uuid"`
	}{status, token})
	return fmt.Sprintf(
		"curl -X POST '%s' -H 'accept: application/json' -H 'Content-Type: application/json' -d '%s'",
		endpoint, payload,
	)
}
