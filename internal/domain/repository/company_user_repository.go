package repository

import (
	"context"

	"github.com/jhoicas/iqnext-api/internal/domain/entity"
)

// CompanyUserRepository define el puerto de persistencia para CompanyUser (DIP).
type CompanyUserRepository interface {
	// Create persiste el usuario y completa user.ID.
	// Devuelve domain.ErrEmailAlreadyExists si el correo ya existe en la empresa y
	// domain.ErrCompanyNotFound si la empresa no existe.
	Create(ctx context.Context, user *entity.CompanyUser) error
	// FindForLogin busca por correo en cualquier empresa; (nil, nil) si no existe.
	FindForLogin(ctx context.Context, email string) (*entity.CompanyUserLogin, error)
	// GetByEmailAndCompany devuelve (nil, nil) si no existe.
	GetByEmailAndCompany(ctx context.Context, email string, companyID int) (*entity.CompanyUser, error)
	// UpdatePassword devuelve la cantidad de filas afectadas.
	UpdatePassword(ctx context.Context, id int64, passwordHash string) (int64, error)
}
