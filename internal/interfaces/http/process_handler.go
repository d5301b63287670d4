package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/iqnext-api/internal/application/dto"
	"github.com/jhoicas/iqnext-api/internal/application/usecase"
)

// ProcessHandler maneja procesos: listado por empresa, alta y curl de ejemplo.
type ProcessHandler struct {
	uc *usecase.ProcessUseCase
}

// NewProcessHandler construye el handler de procesos.
func NewProcessHandler(uc *usecase.ProcessUseCase) *ProcessHandler {
	return &ProcessHandler{uc: uc}
}

// ListByCompany godoc
// @Summary      Listar procesos de una empresa
// @Tags         procesos
// @Produce      json
// @Param        empresaId  path  int  true  "ID de la empresa"
// @Success      200  {array}   dto.ProcessResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /GetProcesoEmpresas/{empresaId} [get]
func (h *ProcessHandler) ListByCompany(c *fiber.Ctx) error {
	companyID, err := c.ParamsInt("empresaId")
	if err != nil {
		return invalidParam(c, "empresaId")
	}
	out, err := h.uc.ListByCompany(c.Context(), companyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear proceso
// @Description  El UUID externo lo genera el servidor.
// @Tags         procesos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProcessRequest  true  "empresaId y nombre"
// @Success      201   {object}  dto.CreatedProcessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /CrearProceso [post]
func (h *ProcessHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProcessRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	c.Location("/GetEjecucionesProcesos/" + strconv.Itoa(out.ID))
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RegisterCurl godoc
// @Summary      Comandos curl de ejemplo para registrar ejecuciones
// @Tags         procesos
// @Produce      json
// @Param        procesoId  path  int  true  "ID del proceso"
// @Success      200  {object}  dto.RegisterCurlResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /GetRegistrarCurl/{procesoId} [get]
func (h *ProcessHandler) RegisterCurl(c *fiber.Ctx) error {
	processID, err := c.ParamsInt("procesoId")
	if err != nil {
		return invalidParam(c, "procesoId")
	}
	out, err := h.uc.RegisterCurl(c.Context(), processID, c.BaseURL())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
