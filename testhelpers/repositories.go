// Package testhelpers contiene dobles de prueba (testify/mock) de los puertos de persistencia.
package testhelpers

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/iqnext-api/internal/domain/entity"
	"github.com/jhoicas/iqnext-api/internal/domain/repository"
)

var (
	_ repository.CompanyRepository     = (*MockCompanyRepository)(nil)
	_ repository.ProcessRepository     = (*MockProcessRepository)(nil)
	_ repository.ExecutionRepository   = (*MockExecutionRepository)(nil)
	_ repository.CompanyUserRepository = (*MockCompanyUserRepository)(nil)
)

type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) List(ctx context.Context) ([]*entity.Company, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Company), args.Error(1)
}

func (m *MockCompanyRepository) Exists(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockProcessRepository struct {
	mock.Mock
}

func (m *MockProcessRepository) Create(ctx context.Context, p *entity.Process) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProcessRepository) GetByToken(ctx context.Context, token string) (*entity.Process, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Process), args.Error(1)
}

func (m *MockProcessRepository) GetTokenByID(ctx context.Context, id int) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockProcessRepository) Exists(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockProcessRepository) ListByCompany(ctx context.Context, companyID int) ([]*entity.Process, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Process), args.Error(1)
}

type MockExecutionRepository struct {
	mock.Mock
}

func (m *MockExecutionRepository) Insert(ctx context.Context, processID int, timestamp *time.Time, status *uint8) (int, error) {
	args := m.Called(ctx, processID, timestamp, status)
	return args.Int(0), args.Error(1)
}

func (m *MockExecutionRepository) GetByID(ctx context.Context, id int) (*entity.Execution, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Execution), args.Error(1)
}

func (m *MockExecutionRepository) ListByProcess(ctx context.Context, processID int) ([]*entity.Execution, error) {
	args := m.Called(ctx, processID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Execution), args.Error(1)
}

type MockCompanyUserRepository struct {
	mock.Mock
}

func (m *MockCompanyUserRepository) Create(ctx context.Context, u *entity.CompanyUser) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockCompanyUserRepository) FindForLogin(ctx context.Context, email string) (*entity.CompanyUserLogin, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.CompanyUserLogin), args.Error(1)
}

func (m *MockCompanyUserRepository) GetByEmailAndCompany(ctx context.Context, email string, companyID int) (*entity.CompanyUser, error) {
	args := m.Called(ctx, email, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.CompanyUser), args.Error(1)
}

func (m *MockCompanyUserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) (int64, error) {
	args := m.Called(ctx, id, passwordHash)
	return args.Get(0).(int64), args.Error(1)
}
