package dto

// CreateCompanyUserRequest entrada para POST /CrearUsuarioEmpresa (contraseña en texto, se hashea en el caso de uso).
type CreateCompanyUserRequest struct {
	CompanyID int     `json:"empresaId" validate:"required,gt=0"`
	Email     string  `json:"correo" validate:"required,email"`
	Name      *string `json:"nombre"`
	Password  string  `json:"contrasena" validate:"required,min=6"`
}

// CompanyUserResponse salida de un usuario (sin contraseña).
type CompanyUserResponse struct {
	ID        int64   `json:"id"`
	CompanyID int     `json:"empresaId"`
	Email     string  `json:"correo"`
	Name      *string `json:"nombre"`
	IsAdmin   bool    `json:"esAdmin"`
}

// LoginRequest entrada para POST /Login.
type LoginRequest struct {
	Email    string `json:"correo" validate:"required"`
	Password string `json:"contrasena" validate:"required"`
}

// LoginResponse sobre de respuesta del login. En fallos solo se llenan Success y Message.
type LoginResponse struct {
	Success     bool    `json:"exito"`
	Message     string  `json:"mensaje"`
	UserID      *int64  `json:"usuarioId"`
	CompanyID   *int    `json:"empresaId"`
	CompanyName *string `json:"empresaNombre"`
	Name        *string `json:"nombre"`
	Email       *string `json:"correo"`
	IsAdmin     bool    `json:"esAdmin"`
}

// ChangePasswordRequest entrada para POST /CambiarPassword.
type ChangePasswordRequest struct {
	CompanyID       int    `json:"empresaId"`
	Email           string `json:"correo" validate:"required"`
	CurrentPassword string `json:"passwordActual" validate:"required"`
	NewPassword     string `json:"passwordNueva" validate:"required,min=6"`
}

// ChangePasswordResponse sobre de respuesta del cambio de contraseña.
type ChangePasswordResponse struct {
	Success bool   `json:"exito"`
	Message string `json:"mensaje"`
}
