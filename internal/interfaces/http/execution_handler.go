package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/iqnext-api/internal/application/dto"
	"github.com/jhoicas/iqnext-api/internal/application/execution"
)

// ExecutionHandler registra y lista ejecuciones de procesos.
type ExecutionHandler struct {
	register *execution.RegisterExecutionUseCase
	list     *execution.ListExecutionsUseCase
}

// NewExecutionHandler construye el handler de ejecuciones.
func NewExecutionHandler(register *execution.RegisterExecutionUseCase, list *execution.ListExecutionsUseCase) *ExecutionHandler {
	return &ExecutionHandler{register: register, list: list}
}

// Register godoc
// @Summary      Registrar ejecución
// @Description  Acepta el proceso por uuid (preferido) o por procesoId. fechaHora y estatus son opcionales.
// @Tags         ejecuciones
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterExecutionRequest  true  "Referencia al proceso, fechaHora y estatus"
// @Success      201   {object}  dto.ExecutionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /RegistrarEjecucion [post]
func (h *ExecutionHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterExecutionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.register.RegisterFromRequest(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	c.Location("/GetEjecucionesProcesos/" + strconv.Itoa(out.ProcessID))
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByProcess godoc
// @Summary      Listar ejecuciones de un proceso
// @Tags         ejecuciones
// @Produce      json
// @Param        procesoId  path  int  true  "ID del proceso"
// @Success      200  {array}   dto.ExecutionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /GetEjecucionesProcesos/{procesoId} [get]
func (h *ExecutionHandler) ListByProcess(c *fiber.Ctx) error {
	processID, err := c.ParamsInt("procesoId")
	if err != nil {
		return invalidParam(c, "procesoId")
	}
	out, err := h.list.ByProcess(c.Context(), processID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
