package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/jhoicas/iqnext-api/internal/application/dto"
	"github.com/jhoicas/iqnext-api/internal/domain"
	"github.com/jhoicas/iqnext-api/internal/domain/entity"
	"github.com/jhoicas/iqnext-api/internal/domain/repository"
	"github.com/jhoicas/iqnext-api/pkg/normalize"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength longitud mínima de contraseña, tanto en alta como en cambio.
const MinPasswordLength = 6

// Mensajes de respuesta para el cliente.
const (
	MsgLoginOK         = "Inicio de sesión correcto."
	MsgPasswordChanged = "Contraseña actualizada correctamente."
)

// Failure error de autenticación con un mensaje apto para el cliente.
// Unwrap expone el error de dominio que decide el código HTTP.
type Failure struct {
	kind error
	msg  string
}

func (f *Failure) Error() string { return f.msg }
func (f *Failure) Unwrap() error { return f.kind }

var (
	ErrMissingCredentials    = &Failure{domain.ErrInvalidInput, "Correo y contraseña son obligatorios."}
	ErrPasswordTooShort      = &Failure{domain.ErrInvalidInput, "La contraseña debe tener al menos 6 caracteres."}
	ErrInvalidCredentials    = &Failure{domain.ErrUnauthorized, "Correo o contraseña incorrectos."}
	ErrMissingPasswordFields = &Failure{domain.ErrInvalidInput, "Correo, contraseña actual y nueva son obligatorios."}
	ErrNewPasswordTooShort   = &Failure{domain.ErrInvalidInput, "La nueva contraseña debe tener al menos 6 caracteres."}
	ErrUserNotInCompany      = &Failure{domain.ErrUserNotFound, "Usuario no encontrado para la empresa indicada."}
	ErrWrongCurrentPassword  = &Failure{domain.ErrUnauthorized, "La contraseña actual es incorrecta."}
	ErrPasswordNotUpdated    = &Failure{errors.New("update sin filas afectadas"), "No se pudo actualizar la contraseña."}
)

// AuthUseCase alta de usuarios de empresa, login y cambio de contraseña.
type AuthUseCase struct {
	users     repository.CompanyUserRepository
	companies repository.CompanyRepository
	cost      int
	dummyHash []byte
}

// NewAuthUseCase construye el caso de uso. cost <= 0 usa bcrypt.DefaultCost.
func NewAuthUseCase(users repository.CompanyUserRepository, companies repository.CompanyRepository, cost int) *AuthUseCase {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	// Hash de relleno para que un correo inexistente cueste lo mismo que una contraseña incorrecta.
	dummy, err := bcrypt.GenerateFromPassword([]byte("iqnext-dummy-password"), cost)
	if err != nil {
		panic(err)
	}
	return &AuthUseCase{users: users, companies: companies, cost: cost, dummyHash: dummy}
}

// CreateCompanyUser valida, hashea la contraseña con bcrypt y persiste el usuario.
// El correo duplicado en la empresa lo detecta el constraint único (domain.ErrEmailAlreadyExists).
func (uc *AuthUseCase) CreateCompanyUser(ctx context.Context, in dto.CreateCompanyUserRequest) (*dto.CompanyUserResponse, error) {
	email := normalize.Email(in.Email)
	if email == "" || strings.TrimSpace(in.Password) == "" {
		return nil, ErrMissingCredentials
	}
	if len(in.Password) < MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	ok, err := uc.companies.Exists(ctx, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrCompanyNotFound
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.cost)
	if err != nil {
		return nil, err
	}
	var name *string
	if in.Name != nil {
		if n := normalize.Name(*in.Name); n != "" {
			name = &n
		}
	}
	u := &entity.CompanyUser{
		CompanyID:    in.CompanyID,
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
	}
	if err := uc.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return &dto.CompanyUserResponse{
		ID:        u.ID,
		CompanyID: u.CompanyID,
		Email:     u.Email,
		Name:      u.Name,
		IsAdmin:   u.IsAdmin,
	}, nil
}

// Login verifica correo y contraseña. Correo inexistente y contraseña incorrecta
// devuelven el mismo ErrInvalidCredentials.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := normalize.Email(in.Email)
	if email == "" || strings.TrimSpace(in.Password) == "" {
		return nil, ErrMissingCredentials
	}

	user, err := uc.users.FindForLogin(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword(uc.dummyHash, []byte(in.Password))
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	companyName := user.CompanyName
	userEmail := user.Email
	return &dto.LoginResponse{
		Success:     true,
		Message:     MsgLoginOK,
		UserID:      &user.ID,
		CompanyID:   &user.CompanyID,
		CompanyName: &companyName,
		Name:        user.Name,
		Email:       &userEmail,
		IsAdmin:     user.IsAdmin,
	}, nil
}

// ChangePassword cambia la contraseña de un usuario identificado por empresa y correo.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, in dto.ChangePasswordRequest) (*dto.ChangePasswordResponse, error) {
	email := normalize.Email(in.Email)
	if email == "" || strings.TrimSpace(in.CurrentPassword) == "" || strings.TrimSpace(in.NewPassword) == "" {
		return nil, ErrMissingPasswordFields
	}
	if len(in.NewPassword) < MinPasswordLength {
		return nil, ErrNewPasswordTooShort
	}

	user, err := uc.users.GetByEmailAndCompany(ctx, email, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotInCompany
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return nil, ErrWrongCurrentPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), uc.cost)
	if err != nil {
		return nil, err
	}
	rows, err := uc.users.UpdatePassword(ctx, user.ID, string(hash))
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrPasswordNotUpdated
	}
	return &dto.ChangePasswordResponse{Success: true, Message: MsgPasswordChanged}, nil
}
