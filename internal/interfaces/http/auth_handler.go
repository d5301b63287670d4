package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/iqnext-api/internal/application/auth"
	"github.com/jhoicas/iqnext-api/internal/application/dto"
)

// AuthHandler maneja alta de usuarios de empresa, login y cambio de contraseña.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// CreateCompanyUser godoc
// @Summary      Crear usuario de empresa
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompanyUserRequest  true  "empresaId, correo, nombre, contrasena"
// @Success      200   {object}  dto.CompanyUserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /CrearUsuarioEmpresa [post]
func (h *AuthHandler) CreateCompanyUser(c *fiber.Ctx) error {
	var in dto.CreateCompanyUserRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateCompanyUser(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "correo, contrasena"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.LoginResponse
// @Router       /Login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.LoginResponse{Message: "cuerpo inválido"})
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		status, msg := envelopeFailure(c, err)
		return c.Status(status).JSON(dto.LoginResponse{Message: msg})
	}
	return c.JSON(out)
}

// ChangePassword godoc
// @Summary      Cambiar contraseña
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChangePasswordRequest  true  "empresaId, correo, passwordActual, passwordNueva"
// @Success      200   {object}  dto.ChangePasswordResponse
// @Failure      400   {object}  dto.ChangePasswordResponse
// @Failure      401   {object}  dto.ChangePasswordResponse
// @Failure      404   {object}  dto.ChangePasswordResponse
// @Failure      500   {object}  dto.ChangePasswordResponse
// @Router       /CambiarPassword [post]
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ChangePasswordResponse{Message: "cuerpo inválido"})
	}
	out, err := h.uc.ChangePassword(c.Context(), in)
	if err != nil {
		status, msg := envelopeFailure(c, err)
		return c.Status(status).JSON(dto.ChangePasswordResponse{Message: msg})
	}
	return c.JSON(out)
}

// envelopeFailure resuelve código y mensaje para las respuestas tipo sobre (exito/mensaje).
func envelopeFailure(c *fiber.Ctx, err error) (int, string) {
	status, _ := classify(err)
	var f *auth.Failure
	if errors.As(err, &f) {
		if status == fiber.StatusInternalServerError {
			logInternal(c, err)
		}
		return status, f.Error()
	}
	if status == fiber.StatusInternalServerError {
		logInternal(c, err)
		return status, msgInternal
	}
	return status, err.Error()
}
