package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// Pinger comprueba la conectividad con la base de datos (*pgxpool.Pool lo cumple).
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler expone el estado del servicio.
type HealthHandler struct {
	service string
	db      Pinger
}

// NewHealthHandler construye el handler de salud.
func NewHealthHandler(service string, db Pinger) *HealthHandler {
	return &HealthHandler{service: service, db: db}
}

// Live godoc
// @Summary      Estado del servicio
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "service": h.service})
}

// DB godoc
// @Summary      Estado de la base de datos
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /health/db [get]
func (h *HealthHandler) DB(c *fiber.Ctx) error {
	if h.db == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable", "service": h.service})
	}
	if err := h.db.Ping(c.Context()); err != nil {
		logInternal(c, err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable", "service": h.service})
	}
	return c.JSON(fiber.Map{"status": "ok", "service": h.service})
}
