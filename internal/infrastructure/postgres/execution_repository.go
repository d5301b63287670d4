package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/iqnext-api/internal/domain"
	"github.com/jhoicas/iqnext-api/internal/domain/entity"
	"github.com/jhoicas/iqnext-api/internal/domain/repository"
)

var _ repository.ExecutionRepository = (*ExecutionRepo)(nil)

// ExecutionRepo implementación del puerto ExecutionRepository sobre PostgreSQL.
// La tabla ejecucion es append-only: no hay Update ni Delete.
type ExecutionRepo struct {
	q Querier
}

// NewExecutionRepository construye el adaptador. Acepta pool o tx (Querier).
func NewExecutionRepository(q Querier) *ExecutionRepo {
	return &ExecutionRepo{q: q}
}

// Insert agrega una ejecución. Los valores nil se resuelven en la base:
// fecha_hora = now() (instante del servidor) y estatus = 0.
func (r *ExecutionRepo) Insert(ctx context.Context, processID int, timestamp *time.Time, status *uint8) (int, error) {
	const query = `
		INSERT INTO ejecucion (proceso_id, fecha_hora, estatus)
		VALUES ($1, COALESCE($2::timestamptz, now()), COALESCE($3::smallint, 0))
		RETURNING id`

	var ts *time.Time
	if timestamp != nil {
		utc := timestamp.UTC()
		ts = &utc
	}
	var st *int16
	if status != nil {
		v := int16(*status)
		st = &v
	}

	var id int
	if err := r.q.QueryRow(ctx, query, processID, ts, st).Scan(&id); err != nil {
		if isForeignKeyViolation(err) {
			return 0, fmt.Errorf("%w: proceso %d no existe", domain.ErrNotFound, processID)
		}
		return 0, fmt.Errorf("insert ejecucion: %w", err)
	}
	return id, nil
}

// GetByID obtiene una ejecución por id.
func (r *ExecutionRepo) GetByID(ctx context.Context, id int) (*entity.Execution, error) {
	const query = `
		SELECT id, proceso_id, fecha_hora, estatus
		FROM ejecucion
		WHERE id = $1`
	e, err := scanExecution(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ejecucion %d: %w", id, err)
	}
	return e, nil
}

// ListByProcess lista las ejecuciones de un proceso, la más reciente primero.
func (r *ExecutionRepo) ListByProcess(ctx context.Context, processID int) ([]*entity.Execution, error) {
	const query = `
		SELECT id, proceso_id, fecha_hora, estatus
		FROM ejecucion
		WHERE proceso_id = $1
		ORDER BY fecha_hora DESC, id DESC`
	rows, err := r.q.Query(ctx, query, processID)
	if err != nil {
		return nil, fmt.Errorf("list ejecuciones: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Execution, 0)
	for rows.Next() {
		e, err := scanExecution(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ejecucion: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func scanExecution(row pgxScanner) (*entity.Execution, error) {
	var e entity.Execution
	var status int16
	if err := row.Scan(&e.ID, &e.ProcessID, &e.Timestamp, &status); err != nil {
		return nil, err
	}
	e.Timestamp = e.Timestamp.UTC()
	e.Status = uint8(status)
	return &e, nil
}
