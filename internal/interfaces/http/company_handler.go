package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/iqnext-api/internal/application/usecase"
)

// CompanyHandler maneja las peticiones HTTP para el recurso empresa.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construye el handler inyectando el caso de uso.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// List godoc
// @Summary      Listar empresas
// @Tags         empresas
// @Produce      json
// @Success      200  {array}   dto.CompanyResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /GetEmpresas [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
