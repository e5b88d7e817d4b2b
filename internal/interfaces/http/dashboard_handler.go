package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/cvidaal/jungla-admin/internal/application"
)

type DashboardHandler struct {
	service *application.ReservaService
}

// NewDashboardHandler crea una nueva instancia del handler del dashboard
func NewDashboardHandler(service *application.ReservaService) *DashboardHandler {
	return &DashboardHandler{
		service: service,
	}
}

// GetStats devuelve las estadísticas del dashboard. La fecha de referencia
// puede fijarse con ?fecha=YYYY-MM-DD; por defecto es hoy.
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	hoy := time.Now()
	if fechaStr := c.Query("fecha"); fechaStr != "" {
		fecha, err := time.Parse("2006-01-02", fechaStr)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Formato de fecha inválido. Use YYYY-MM-DD",
			})
		}
		hoy = fecha
	}

	stats, err := h.service.Stats(hoy)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"data": stats,
	})
}

// GetCalendario devuelve las reservas del mes agrupadas por día.
// El mes se indica con ?mes=YYYY-MM; por defecto es el mes actual.
func (h *DashboardHandler) GetCalendario(c *fiber.Ctx) error {
	mes := c.Query("mes", time.Now().Format("2006-01"))
	if _, err := time.Parse("2006-01", mes); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Formato de mes inválido. Use YYYY-MM",
		})
	}

	porDia, err := h.service.Calendario(mes)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"data": porDia,
	})
}

// GetDia devuelve las reservas no canceladas de una fecha, ordenadas por hora
func (h *DashboardHandler) GetDia(c *fiber.Ctx) error {
	fecha := c.Params("fecha")
	if _, err := time.Parse("2006-01-02", fecha); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Formato de fecha inválido. Use YYYY-MM-DD",
		})
	}

	reservas, err := h.service.Dia(fecha)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"data": reservas,
	})
}
