package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/jhoicas/iqnext-api/internal/domain"
	"github.com/jhoicas/iqnext-api/internal/domain/entity"
)

type RepositoryTestSuite struct {
	suite.Suite
	mock pgxmock.PgxPoolIface
	ctx  context.Context
}

func (s *RepositoryTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	require.NoError(s.T(), err)
	s.mock = mock
	s.ctx = context.Background()
}

func (s *RepositoryTestSuite) TearDownTest() {
	assert.NoError(s.T(), s.mock.ExpectationsWereMet())
	s.mock.Close()
}

func TestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}

func sqlLike(fragment string) string {
	return regexp.QuoteMeta(fragment)
}

func strPtr(s string) *string { return &s }

// ── Empresas ─────────────────────────────────────────────────────────────────

func (s *RepositoryTestSuite) TestCompanyList_OrdenadoPorNombre() {
	s.mock.ExpectQuery(sqlLike("FROM empresa ORDER BY nombre")).
		WillReturnRows(pgxmock.NewRows([]string{"id", "rfc", "nombre"}).
			AddRow(2, "AAA010101AAA", "Acme").
			AddRow(1, "BBB010101BBB", "Beta"))

	list, err := NewCompanyRepository(s.mock).List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("Acme", list[0].Name)
	s.Equal("AAA010101AAA", list[0].RFC)
	s.Equal(1, list[1].ID)
}

func (s *RepositoryTestSuite) TestCompanyList_VacioDevuelveSliceVacio() {
	s.mock.ExpectQuery(sqlLike("FROM empresa")).
		WillReturnRows(pgxmock.NewRows([]string{"id", "rfc", "nombre"}))

	list, err := NewCompanyRepository(s.mock).List(s.ctx)
	s.Require().NoError(err)
	s.NotNil(list)
	s.Empty(list)
}

func (s *RepositoryTestSuite) TestCompanyExists() {
	s.mock.ExpectQuery(sqlLike("SELECT EXISTS (SELECT 1 FROM empresa WHERE id = $1)")).
		WithArgs(5).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := NewCompanyRepository(s.mock).Exists(s.ctx, 5)
	s.Require().NoError(err)
	s.True(ok)
}

// ── Procesos ─────────────────────────────────────────────────────────────────

func (s *RepositoryTestSuite) TestProcessCreate_AsignaID() {
	p := &entity.Process{CompanyID: 1, Name: "Facturación", Token: "3fa85f64-5717-4562-b3fc-2c963f66afa6"}
	s.mock.ExpectQuery(sqlLike("INSERT INTO proceso (empresa_id, nombre, uuid)")).
		WithArgs(1, "Facturación", p.Token).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(42))

	err := NewProcessRepository(s.mock).Create(s.ctx, p)
	s.Require().NoError(err)
	s.Equal(42, p.ID)
}

func (s *RepositoryTestSuite) TestProcessCreate_NombreDuplicado() {
	s.mock.ExpectQuery(sqlLike("INSERT INTO proceso")).
		WithArgs(1, "Facturación", pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "proceso_empresa_nombre_uk"})

	err := NewProcessRepository(s.mock).Create(s.ctx, &entity.Process{CompanyID: 1, Name: "Facturación", Token: "x"})
	s.ErrorIs(err, domain.ErrDuplicate)
}

func (s *RepositoryTestSuite) TestProcessCreate_ColisionDeUUIDNoEsNombreDuplicado() {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "proceso_uuid_uk"}
	s.mock.ExpectQuery(sqlLike("INSERT INTO proceso")).
		WithArgs(1, "Facturación", pgxmock.AnyArg()).
		WillReturnError(pgErr)

	err := NewProcessRepository(s.mock).Create(s.ctx, &entity.Process{CompanyID: 1, Name: "Facturación", Token: "x"})
	s.Require().Error(err)
	s.NotErrorIs(err, domain.ErrDuplicate)
	s.ErrorIs(err, pgErr)
	s.Contains(err.Error(), "proceso_uuid_uk")
}

func (s *RepositoryTestSuite) TestProcessCreate_EmpresaInexistente() {
	s.mock.ExpectQuery(sqlLike("INSERT INTO proceso")).
		WithArgs(99, "X", pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23503"})

	err := NewProcessRepository(s.mock).Create(s.ctx, &entity.Process{CompanyID: 99, Name: "X", Token: "x"})
	s.ErrorIs(err, domain.ErrCompanyNotFound)
}

func (s *RepositoryTestSuite) TestProcessGetByToken() {
	token := "3fa85f64-5717-4562-b3fc-2c963f66afa6"
	s.mock.ExpectQuery(sqlLike("FROM proceso WHERE lower(uuid) = lower($1)")).
		WithArgs(token).
		WillReturnRows(pgxmock.NewRows([]string{"id", "empresa_id", "nombre", "uuid"}).
			AddRow(7, 1, "Nómina", strPtr(token)))

	p, err := NewProcessRepository(s.mock).GetByToken(s.ctx, token)
	s.Require().NoError(err)
	s.Require().NotNil(p)
	s.Equal(7, p.ID)
	s.Equal(token, p.Token)
}

func (s *RepositoryTestSuite) TestProcessGetByToken_TokenGuardadoEnMayusculas() {
	stored := "3FA85F64-5717-4562-B3FC-2C963F66AFA6"
	s.mock.ExpectQuery(sqlLike("WHERE lower(uuid) = lower($1)")).
		WithArgs("3fa85f64-5717-4562-b3fc-2c963f66afa6").
		WillReturnRows(pgxmock.NewRows([]string{"id", "empresa_id", "nombre", "uuid"}).
			AddRow(8, 1, "Alta externa", strPtr(stored)))

	p, err := NewProcessRepository(s.mock).GetByToken(s.ctx, "3fa85f64-5717-4562-b3fc-2c963f66afa6")
	s.Require().NoError(err)
	s.Require().NotNil(p)
	s.Equal(8, p.ID)
	s.Equal(stored, p.Token)
}

func (s *RepositoryTestSuite) TestProcessGetByToken_NoExiste() {
	s.mock.ExpectQuery(sqlLike("FROM proceso WHERE lower(uuid) = lower($1)")).
		WithArgs("nope").
		WillReturnRows(pgxmock.NewRows([]string{"id", "empresa_id", "nombre", "uuid"}))

	p, err := NewProcessRepository(s.mock).GetByToken(s.ctx, "nope")
	s.NoError(err)
	s.Nil(p)
}

func (s *RepositoryTestSuite) TestProcessGetTokenByID_SinUUID() {
	s.mock.ExpectQuery(sqlLike("SELECT uuid FROM proceso WHERE id = $1")).
		WithArgs(3).
		WillReturnRows(pgxmock.NewRows([]string{"uuid"}).AddRow(nil))

	token, err := NewProcessRepository(s.mock).GetTokenByID(s.ctx, 3)
	s.NoError(err)
	s.Empty(token)
}

func (s *RepositoryTestSuite) TestProcessListByCompany() {
	s.mock.ExpectQuery(sqlLike("WHERE empresa_id = $1 ORDER BY nombre")).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows([]string{"id", "empresa_id", "nombre", "uuid"}).
			AddRow(1, 1, "A", strPtr("t1")).
			AddRow(2, 1, "B", nil))

	list, err := NewProcessRepository(s.mock).ListByCompany(s.ctx, 1)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("t1", list[0].Token)
	s.Empty(list[1].Token)
}

// ── Ejecuciones ──────────────────────────────────────────────────────────────

func (s *RepositoryTestSuite) TestExecutionInsert_ValoresPorDefectoEnLaBase() {
	s.mock.ExpectQuery(sqlLike("COALESCE($2::timestamptz, now()), COALESCE($3::smallint, 0)")).
		WithArgs(7, (*time.Time)(nil), (*int16)(nil)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(100))

	id, err := NewExecutionRepository(s.mock).Insert(s.ctx, 7, nil, nil)
	s.Require().NoError(err)
	s.Equal(100, id)
}

func (s *RepositoryTestSuite) TestExecutionInsert_ConvierteAUTC() {
	loc := time.FixedZone("CST", -6*3600)
	local := time.Date(2024, 5, 1, 8, 0, 0, 0, loc)
	utc := local.UTC()
	status := uint8(1)
	st := int16(1)

	s.mock.ExpectQuery(sqlLike("INSERT INTO ejecucion")).
		WithArgs(7, &utc, &st).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(101))

	id, err := NewExecutionRepository(s.mock).Insert(s.ctx, 7, &local, &status)
	s.Require().NoError(err)
	s.Equal(101, id)
}

func (s *RepositoryTestSuite) TestExecutionInsert_ProcesoInexistente() {
	s.mock.ExpectQuery(sqlLike("INSERT INTO ejecucion")).
		WithArgs(999, pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23503"})

	_, err := NewExecutionRepository(s.mock).Insert(s.ctx, 999, nil, nil)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *RepositoryTestSuite) TestExecutionInsert_ErrorDeConexionSePropaga() {
	boom := errors.New("conexión rechazada")
	s.mock.ExpectQuery(sqlLike("INSERT INTO ejecucion")).
		WithArgs(7, pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(boom)

	_, err := NewExecutionRepository(s.mock).Insert(s.ctx, 7, nil, nil)
	s.ErrorIs(err, boom)
	s.NotErrorIs(err, domain.ErrNotFound)
}

func (s *RepositoryTestSuite) TestExecutionGetByID() {
	ts := time.Date(2024, 5, 1, 14, 0, 0, 0, time.UTC)
	s.mock.ExpectQuery(sqlLike("FROM ejecucion WHERE id = $1")).
		WithArgs(100).
		WillReturnRows(pgxmock.NewRows([]string{"id", "proceso_id", "fecha_hora", "estatus"}).
			AddRow(100, 7, ts, int16(1)))

	e, err := NewExecutionRepository(s.mock).GetByID(s.ctx, 100)
	s.Require().NoError(err)
	s.Require().NotNil(e)
	s.Equal(7, e.ProcessID)
	s.Equal(uint8(1), e.Status)
	s.True(ts.Equal(e.Timestamp))
}

func (s *RepositoryTestSuite) TestExecutionListByProcess_MasRecientePrimero() {
	newer := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	older := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	s.mock.ExpectQuery(sqlLike("ORDER BY fecha_hora DESC, id DESC")).
		WithArgs(7).
		WillReturnRows(pgxmock.NewRows([]string{"id", "proceso_id", "fecha_hora", "estatus"}).
			AddRow(2, 7, newer, int16(1)).
			AddRow(1, 7, older, int16(0)))

	list, err := NewExecutionRepository(s.mock).ListByProcess(s.ctx, 7)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal(2, list[0].ID)
	s.Equal(uint8(0), list[1].Status)
}

// ── Usuarios de empresa ──────────────────────────────────────────────────────

func (s *RepositoryTestSuite) TestCompanyUserCreate() {
	u := &entity.CompanyUser{CompanyID: 1, Email: "ana@acme.mx", Name: strPtr("Ana"), PasswordHash: "$2a$hash"}
	s.mock.ExpectQuery(sqlLike("INSERT INTO usuario_empresa (empresa_id, correo, nombre, contrasena, es_admin)")).
		WithArgs(1, "ana@acme.mx", u.Name, "$2a$hash", false).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(9)))

	err := NewCompanyUserRepository(s.mock).Create(s.ctx, u)
	s.Require().NoError(err)
	s.Equal(int64(9), u.ID)
}

func (s *RepositoryTestSuite) TestCompanyUserCreate_CorreoDuplicado() {
	s.mock.ExpectQuery(sqlLike("INSERT INTO usuario_empresa")).
		WithArgs(1, "ana@acme.mx", pgxmock.AnyArg(), pgxmock.AnyArg(), false).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := NewCompanyUserRepository(s.mock).Create(s.ctx, &entity.CompanyUser{CompanyID: 1, Email: "ana@acme.mx"})
	s.ErrorIs(err, domain.ErrEmailAlreadyExists)
}

func (s *RepositoryTestSuite) TestCompanyUserFindForLogin() {
	s.mock.ExpectQuery(sqlLike("JOIN empresa e ON e.id = ue.empresa_id")).
		WithArgs("ana@acme.mx").
		WillReturnRows(pgxmock.NewRows([]string{"id", "empresa_id", "correo", "nombre", "contrasena", "es_admin", "nombre"}).
			AddRow(int64(9), 1, "ana@acme.mx", strPtr("Ana"), "$2a$hash", true, "Acme"))

	u, err := NewCompanyUserRepository(s.mock).FindForLogin(s.ctx, "ana@acme.mx")
	s.Require().NoError(err)
	s.Require().NotNil(u)
	s.Equal("Acme", u.CompanyName)
	s.True(u.IsAdmin)
	s.Equal("Ana", *u.Name)
}

func (s *RepositoryTestSuite) TestCompanyUserFindForLogin_CorreoGuardadoConMayusculas() {
	s.mock.ExpectQuery(sqlLike("WHERE lower(ue.correo) = lower($1)")).
		WithArgs("ana@ejemplo.mx").
		WillReturnRows(pgxmock.NewRows([]string{"id", "empresa_id", "correo", "nombre", "contrasena", "es_admin", "nombre"}).
			AddRow(int64(4), 1, "Ana@Ejemplo.mx", nil, "$2a$hash", false, "Acme"))

	u, err := NewCompanyUserRepository(s.mock).FindForLogin(s.ctx, "ana@ejemplo.mx")
	s.Require().NoError(err)
	s.Require().NotNil(u)
	s.Equal(int64(4), u.ID)
	s.Equal("Ana@Ejemplo.mx", u.Email)
}

func (s *RepositoryTestSuite) TestCompanyUserFindForLogin_NoExiste() {
	s.mock.ExpectQuery(sqlLike("FROM usuario_empresa ue")).
		WithArgs("nadie@acme.mx").
		WillReturnRows(pgxmock.NewRows([]string{"id", "empresa_id", "correo", "nombre", "contrasena", "es_admin", "nombre"}))

	u, err := NewCompanyUserRepository(s.mock).FindForLogin(s.ctx, "nadie@acme.mx")
	s.NoError(err)
	s.Nil(u)
}

func (s *RepositoryTestSuite) TestCompanyUserGetByEmailAndCompany() {
	s.mock.ExpectQuery(sqlLike("WHERE empresa_id = $1 AND lower(correo) = lower($2)")).
		WithArgs(1, "ana@acme.mx").
		WillReturnRows(pgxmock.NewRows([]string{"id", "empresa_id", "correo", "nombre", "contrasena", "es_admin"}).
			AddRow(int64(9), 1, "ana@acme.mx", nil, "$2a$hash", false))

	u, err := NewCompanyUserRepository(s.mock).GetByEmailAndCompany(s.ctx, "ana@acme.mx", 1)
	s.Require().NoError(err)
	s.Require().NotNil(u)
	s.Nil(u.Name)
	s.Equal("$2a$hash", u.PasswordHash)
}

func (s *RepositoryTestSuite) TestCompanyUserGetByEmailAndCompany_CorreoGuardadoConMayusculas() {
	s.mock.ExpectQuery(sqlLike("lower(correo) = lower($2)")).
		WithArgs(1, "ana@ejemplo.mx").
		WillReturnRows(pgxmock.NewRows([]string{"id", "empresa_id", "correo", "nombre", "contrasena", "es_admin"}).
			AddRow(int64(4), 1, "Ana@Ejemplo.mx", nil, "$2a$hash", false))

	u, err := NewCompanyUserRepository(s.mock).GetByEmailAndCompany(s.ctx, "ana@ejemplo.mx", 1)
	s.Require().NoError(err)
	s.Require().NotNil(u)
	s.Equal(int64(4), u.ID)
}

func (s *RepositoryTestSuite) TestCompanyUserUpdatePassword() {
	s.mock.ExpectExec(sqlLike("UPDATE usuario_empresa SET contrasena = $2 WHERE id = $1")).
		WithArgs(int64(9), "$2a$nuevo").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	n, err := NewCompanyUserRepository(s.mock).UpdatePassword(s.ctx, 9, "$2a$nuevo")
	s.Require().NoError(err)
	s.Equal(int64(1), n)
}

func TestPgErrorClassification(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isUniqueViolation(errors.New("23505 en el texto no cuenta")))
	assert.True(t, isForeignKeyViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isForeignKeyViolation(nil))
	assert.Equal(t, "proceso_empresa_nombre_uk", violatedConstraint(&pgconn.PgError{Code: "23505", ConstraintName: "proceso_empresa_nombre_uk"}))
	assert.Empty(t, violatedConstraint(errors.New("sin constraint")))
}
