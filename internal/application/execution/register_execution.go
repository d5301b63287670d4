package execution

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/iqnext-api/internal/application/dto"
	"github.com/jhoicas/iqnext-api/internal/domain"
	"github.com/jhoicas/iqnext-api/internal/domain/entity"
	"github.com/jhoicas/iqnext-api/internal/domain/repository"
)

// RegisterExecutionUseCase resuelve la referencia al proceso (UUID externo o id numérico),
// inserta la ejecución y la relee para devolver exactamente lo persistido.
type RegisterExecutionUseCase struct {
	processes  processResolver
	executions repository.ExecutionRepository
}

// NewRegisterExecutionUseCase construye el caso de uso.
func NewRegisterExecutionUseCase(processes processResolver, executions repository.ExecutionRepository) *RegisterExecutionUseCase {
	return &RegisterExecutionUseCase{processes: processes, executions: executions}
}

// RegisterInput entrada ya desacoplada del transporte.
type RegisterInput struct {
	Token     string
	ProcessID int
	Timestamp *time.Time
	Status    *int
}

// RegisterFromRequest adapta el request HTTP al caso de uso.
func (uc *RegisterExecutionUseCase) RegisterFromRequest(ctx context.Context, in dto.RegisterExecutionRequest) (*dto.ExecutionResponse, error) {
	return uc.Register(ctx, RegisterInput{
		Token:     in.Token,
		ProcessID: in.ProcessID,
		Timestamp: in.Timestamp.Ptr(),
		Status:    in.Status,
	})
}

// Register valida, resuelve el proceso, inserta y relee la ejecución.
// Errores: domain.ErrInvalidInput (referencia o estatus inválidos) y domain.ErrNotFound
// (proceso inexistente). En ambos casos no se inserta nada.
func (uc *RegisterExecutionUseCase) Register(ctx context.Context, in RegisterInput) (*dto.ExecutionResponse, error) {
	token, err := validateReference(in)
	if err != nil {
		return nil, err
	}

	var status *uint8
	if in.Status != nil {
		if !entity.ValidExecutionStatus(*in.Status) {
			return nil, fmt.Errorf("%w: estatus debe ser 0 o 1", domain.ErrInvalidInput)
		}
		v := uint8(*in.Status)
		status = &v
	}

	processID, err := uc.resolveProcess(ctx, token, strings.TrimSpace(in.Token), in.ProcessID)
	if err != nil {
		return nil, err
	}

	id, err := uc.executions.Insert(ctx, processID, in.Timestamp, status)
	if err != nil {
		return nil, err
	}

	created, err := uc.executions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, fmt.Errorf("ejecución %d no encontrada después de insertar", id)
	}
	return toExecutionResponse(created), nil
}

// validateReference devuelve el token canónico (minúsculas con guiones) o "" si se usa el id numérico.
// La búsqueda en la base no distingue mayúsculas, así que el canónico encuentra también tokens guardados en mayúsculas.
func validateReference(in RegisterInput) (string, error) {
	if raw := strings.TrimSpace(in.Token); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return "", fmt.Errorf("%w: uuid %q no tiene formato válido", domain.ErrInvalidInput, raw)
		}
		return parsed.String(), nil
	}
	if in.ProcessID <= 0 {
		return "", fmt.Errorf("%w: uuid o procesoId (> 0) es obligatorio", domain.ErrInvalidInput)
	}
	return "", nil
}

// resolveProcess busca por token canónico; supplied es el valor tal como lo envió el cliente, para el mensaje de error.
func (uc *RegisterExecutionUseCase) resolveProcess(ctx context.Context, token, supplied string, processID int) (int, error) {
	if token != "" {
		p, err := uc.processes.GetByToken(ctx, token)
		if err != nil {
			return 0, err
		}
		if p == nil {
			return 0, fmt.Errorf("%w: proceso con uuid %q no existe", domain.ErrNotFound, supplied)
		}
		return p.ID, nil
	}

	ok, err := uc.processes.Exists(ctx, processID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("%w: proceso %d no existe", domain.ErrNotFound, processID)
	}
	return processID, nil
}

func toExecutionResponse(e *entity.Execution) *dto.ExecutionResponse {
	return &dto.ExecutionResponse{
		ID:        e.ID,
		ProcessID: e.ProcessID,
		Timestamp: e.Timestamp,
		Status:    e.Status,
	}
}
