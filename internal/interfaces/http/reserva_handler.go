package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/cvidaal/jungla-admin/internal/application"
	"github.com/cvidaal/jungla-admin/internal/domain"
)

type ReservaHandler struct {
	service *application.ReservaService
}

// NewReservaHandler crea una nueva instancia del handler de reservas
func NewReservaHandler(service *application.ReservaService) *ReservaHandler {
	return &ReservaHandler{
		service: service,
	}
}

// UpdateEstadoRequest representa la petición para actualizar el estado de una reserva
type UpdateEstadoRequest struct {
	Estado string `json:"estado"`
}

// ListarReservas devuelve el listado filtrado, ordenado y paginado
func (h *ReservaHandler) ListarReservas(c *fiber.Ctx) error {
	filtros := filtrosDesdeQuery(c)
	descendente := c.Query("orden", "desc") != "asc"

	pagina := 1
	if p := c.Query("pagina"); p != "" {
		valor, err := strconv.Atoi(p)
		if err != nil || valor < 1 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "pagina debe ser un número mayor o igual a 1",
			})
		}
		pagina = valor
	}

	resultado, err := h.service.Listar(filtros, descendente, pagina)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"data":         resultado.Reservas,
		"pagina":       resultado.Pagina,
		"totalPaginas": resultado.TotalPaginas,
		"total":        resultado.Total,
	})
}

// GetReserva devuelve una reserva y las transiciones de estado que se ofrecen desde ella
func (h *ReservaHandler) GetReserva(c *fiber.Ctx) error {
	id := c.Params("id")

	reserva, err := h.service.Detalle(id)
	if err != nil {
		if errors.Is(err, domain.ErrReservaNoEncontrada) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"data":         reserva,
		"pendiente":    reserva.Pendiente(),
		"transiciones": domain.TransicionesDisponibles(reserva.Estado),
	})
}

// UpdateEstado actualiza el estado de una reserva
func (h *ReservaHandler) UpdateEstado(c *fiber.Ctx) error {
	var req UpdateEstadoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Formato de solicitud inválido",
		})
	}

	return h.cambiarEstado(c, domain.EstadoReserva(req.Estado))
}

// Confirmar marca una reserva pendiente de pago como confirmada
func (h *ReservaHandler) Confirmar(c *fiber.Ctx) error {
	return h.cambiarEstado(c, domain.EstadoConfirmado)
}

// Completar marca una reserva confirmada como completada (y pagada)
func (h *ReservaHandler) Completar(c *fiber.Ctx) error {
	return h.cambiarEstado(c, domain.EstadoCompletado)
}

// Cancelar cancela una reserva
func (h *ReservaHandler) Cancelar(c *fiber.Ctx) error {
	return h.cambiarEstado(c, domain.EstadoCancelado)
}

// Refrescar reemite el fetch completo contra el almacén y reemplaza el snapshot
func (h *ReservaHandler) Refrescar(c *fiber.Ctx) error {
	if err := h.service.Refrescar(); err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Reservas actualizadas exitosamente",
	})
}

func (h *ReservaHandler) cambiarEstado(c *fiber.Ctx, estado domain.EstadoReserva) error {
	id := c.Params("id")

	reserva, err := h.service.CambiarEstado(id, estado)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEstadoInvalido):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		case errors.Is(err, domain.ErrReservaNoEncontrada):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		default:
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
	}

	return c.JSON(fiber.Map{
		"message": "Estado de reserva actualizado exitosamente",
		"data":    reserva,
	})
}

// filtrosDesdeQuery construye los filtros del pipeline a partir de la query string
func filtrosDesdeQuery(c *fiber.Ctx) application.Filtros {
	return application.Filtros{
		Estado:     domain.EstadoReserva(c.Query("estado", string(domain.EstadoTodos))),
		Busqueda:   c.Query("busqueda"),
		FechaDesde: c.Query("fechaDesde"),
		FechaHasta: c.Query("fechaHasta"),
	}
}
