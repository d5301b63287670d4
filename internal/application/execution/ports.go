package execution

import (
	"context"

	"github.com/jhoicas/iqnext-api/internal/domain/entity"
)

// processResolver es lo que el registro necesita de ProcessRepository.
type processResolver interface {
	GetByToken(ctx context.Context, token string) (*entity.Process, error)
	Exists(ctx context.Context, id int) (bool, error)
}
