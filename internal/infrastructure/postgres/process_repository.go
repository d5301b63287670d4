package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/iqnext-api/internal/domain"
	"github.com/jhoicas/iqnext-api/internal/domain/entity"
	"github.com/jhoicas/iqnext-api/internal/domain/repository"
)

var _ repository.ProcessRepository = (*ProcessRepo)(nil)

// ProcessRepo implementación del puerto ProcessRepository sobre PostgreSQL.
type ProcessRepo struct {
	q Querier
}

// NewProcessRepository construye el adaptador. Acepta pool o tx (Querier).
func NewProcessRepository(q Querier) *ProcessRepo {
	return &ProcessRepo{q: q}
}

// Create persiste un proceso nuevo y asigna el id generado.
// La unicidad (empresa_id, nombre) la garantiza el constraint de la tabla.
func (r *ProcessRepo) Create(ctx context.Context, p *entity.Process) error {
	const query = `
		INSERT INTO proceso (empresa_id, nombre, uuid)
		VALUES ($1, $2, $3)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, p.CompanyID, p.Name, p.Token).Scan(&p.ID)
	if err != nil {
		switch {
		case isUniqueViolation(err) && violatedConstraint(err) == constraintProcessName:
			return fmt.Errorf("%w: ya existe un proceso con ese nombre en la empresa", domain.ErrDuplicate)
		case isUniqueViolation(err):
			// Colisión de uuid u otro índice único: error interno.
			return fmt.Errorf("insert proceso: constraint %q: %w", violatedConstraint(err), err)
		case isForeignKeyViolation(err):
			return domain.ErrCompanyNotFound
		}
		return fmt.Errorf("insert proceso: %w", err)
	}
	return nil
}

// GetByToken obtiene un proceso por su UUID externo sin distinguir mayúsculas;
// hay procesos dados de alta fuera del servicio con el token en mayúsculas.
func (r *ProcessRepo) GetByToken(ctx context.Context, token string) (*entity.Process, error) {
	const query = `
		SELECT id, empresa_id, nombre, uuid
		FROM proceso
		WHERE lower(uuid) = lower($1)`
	p, err := scanProcess(r.q.QueryRow(ctx, query, token))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proceso by uuid: %w", err)
	}
	return p, nil
}

// GetTokenByID devuelve el UUID externo del proceso, o "" si no existe o no lo tiene.
func (r *ProcessRepo) GetTokenByID(ctx context.Context, id int) (string, error) {
	const query = `SELECT uuid FROM proceso WHERE id = $1`
	var token *string
	if err := r.q.QueryRow(ctx, query, id).Scan(&token); err != nil {
		if isNoRows(err) {
			return "", nil
		}
		return "", fmt.Errorf("get uuid proceso %d: %w", id, err)
	}
	if token == nil {
		return "", nil
	}
	return *token, nil
}

// Exists informa si hay un proceso con ese id.
func (r *ProcessRepo) Exists(ctx context.Context, id int) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM proceso WHERE id = $1)`
	var ok bool
	if err := r.q.QueryRow(ctx, query, id).Scan(&ok); err != nil {
		return false, fmt.Errorf("check proceso %d: %w", id, err)
	}
	return ok, nil
}

// ListByCompany lista los procesos de una empresa ordenados por nombre.
func (r *ProcessRepo) ListByCompany(ctx context.Context, companyID int) ([]*entity.Process, error) {
	const query = `
		SELECT id, empresa_id, nombre, uuid
		FROM proceso
		WHERE empresa_id = $1
		ORDER BY nombre`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list procesos: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Process, 0)
	for rows.Next() {
		p, err := scanProcess(rows)
		if err != nil {
			return nil, fmt.Errorf("scan proceso: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// scanProcess mapea id, empresa_id, nombre, uuid (uuid puede ser NULL en filas antiguas).
func scanProcess(row pgxScanner) (*entity.Process, error) {
	var p entity.Process
	var token *string
	if err := row.Scan(&p.ID, &p.CompanyID, &p.Name, &token); err != nil {
		return nil, err
	}
	if token != nil {
		p.Token = *token
	}
	return &p, nil
}
