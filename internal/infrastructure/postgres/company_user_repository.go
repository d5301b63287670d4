package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/iqnext-api/internal/domain"
	"github.com/jhoicas/iqnext-api/internal/domain/entity"
	"github.com/jhoicas/iqnext-api/internal/domain/repository"
)

var _ repository.CompanyUserRepository = (*CompanyUserRepo)(nil)

// CompanyUserRepo implementación del puerto CompanyUserRepository sobre PostgreSQL.
type CompanyUserRepo struct {
	q Querier
}

// NewCompanyUserRepository construye el adaptador de persistencia para usuarios de empresa.
func NewCompanyUserRepository(q Querier) *CompanyUserRepo {
	return &CompanyUserRepo{q: q}
}

// Create persiste un nuevo usuario. El índice único (empresa_id, lower(correo)) decide los duplicados.
func (r *CompanyUserRepo) Create(ctx context.Context, u *entity.CompanyUser) error {
	const query = `
		INSERT INTO usuario_empresa (empresa_id, correo, nombre, contrasena, es_admin)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, u.CompanyID, u.Email, u.Name, u.PasswordHash, u.IsAdmin).Scan(&u.ID)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrEmailAlreadyExists
		case isForeignKeyViolation(err):
			return domain.ErrCompanyNotFound
		}
		return fmt.Errorf("insert usuario_empresa: %w", err)
	}
	return nil
}

// FindForLogin obtiene el usuario por correo (cualquier empresa) junto con el nombre de su empresa.
// El correo se compara sin distinguir mayúsculas. Si existe en varias empresas se toma el registro más antiguo.
func (r *CompanyUserRepo) FindForLogin(ctx context.Context, email string) (*entity.CompanyUserLogin, error) {
	const query = `
		SELECT ue.id, ue.empresa_id, ue.correo, ue.nombre, ue.contrasena, ue.es_admin, e.nombre
		FROM usuario_empresa ue
		JOIN empresa e ON e.id = ue.empresa_id
		WHERE lower(ue.correo) = lower($1)
		ORDER BY ue.id
		LIMIT 1`
	var u entity.CompanyUserLogin
	err := r.q.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.CompanyID, &u.Email, &u.Name, &u.PasswordHash, &u.IsAdmin, &u.CompanyName,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario for login: %w", err)
	}
	return &u, nil
}

// GetByEmailAndCompany obtiene un usuario por correo (sin distinguir mayúsculas) dentro de una empresa.
func (r *CompanyUserRepo) GetByEmailAndCompany(ctx context.Context, email string, companyID int) (*entity.CompanyUser, error) {
	const query = `
		SELECT id, empresa_id, correo, nombre, contrasena, es_admin
		FROM usuario_empresa
		WHERE empresa_id = $1 AND lower(correo) = lower($2)`
	u, err := scanCompanyUser(r.q.QueryRow(ctx, query, companyID, email))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario by correo and empresa: %w", err)
	}
	return u, nil
}

// UpdatePassword reemplaza el hash de la contraseña y devuelve las filas afectadas.
func (r *CompanyUserRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) (int64, error) {
	const query = `UPDATE usuario_empresa SET contrasena = $2 WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, id, passwordHash)
	if err != nil {
		return 0, fmt.Errorf("update contrasena: %w", err)
	}
	return cmd.RowsAffected(), nil
}

func scanCompanyUser(row pgxScanner) (*entity.CompanyUser, error) {
	var u entity.CompanyUser
	if err := row.Scan(&u.ID, &u.CompanyID, &u.Email, &u.Name, &u.PasswordHash, &u.IsAdmin); err != nil {
		return nil, err
	}
	return &u, nil
}
