package execution

import (
	"context"

	"github.com/jhoicas/iqnext-api/internal/application/dto"
	"github.com/jhoicas/iqnext-api/internal/domain/repository"
)

// ListExecutionsUseCase lista el historial de ejecuciones de un proceso.
type ListExecutionsUseCase struct {
	executions repository.ExecutionRepository
}

// NewListExecutionsUseCase construye el caso de uso.
func NewListExecutionsUseCase(executions repository.ExecutionRepository) *ListExecutionsUseCase {
	return &ListExecutionsUseCase{executions: executions}
}

// ByProcess devuelve las ejecuciones del proceso, la más reciente primero. Sin resultados: slice vacío.
func (uc *ListExecutionsUseCase) ByProcess(ctx context.Context, processID int) ([]dto.ExecutionResponse, error) {
	list, err := uc.executions.ListByProcess(ctx, processID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ExecutionResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toExecutionResponse(e))
	}
	return items, nil
}
