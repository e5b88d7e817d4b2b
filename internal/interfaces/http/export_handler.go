package http

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/cvidaal/jungla-admin/internal/application"
	services "github.com/cvidaal/jungla-admin/internal/service"
)

var errFormatoDesconocido = errors.New("formato de export desconocido")

type ExportHandler struct {
	service   *application.ReservaService
	s3Service *services.S3Service // puede ser nil si S3 no está configurado
}

// NewExportHandler crea una nueva instancia del handler de exports
func NewExportHandler(service *application.ReservaService, s3Service *services.S3Service) *ExportHandler {
	return &ExportHandler{
		service:   service,
		s3Service: s3Service,
	}
}

// Exportar descarga el conjunto filtrado (sin paginar) como CSV o XLSX
// según ?formato=csv|xlsx
func (h *ExportHandler) Exportar(c *fiber.Ctx) error {
	contenido, nombre, contentType, err := h.generar(c)
	if err != nil {
		return respuestaErrorExport(c, err)
	}

	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, nombre))
	return c.Send(contenido)
}

// Archivar sube el export a S3 y devuelve la URL del objeto
func (h *ExportHandler) Archivar(c *fiber.Ctx) error {
	if h.s3Service == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "El archivado de exports no está configurado",
		})
	}

	contenido, nombre, contentType, err := h.generar(c)
	if err != nil {
		return respuestaErrorExport(c, err)
	}

	url, err := h.s3Service.ArchivarExport(nombre, contenido, contentType)
	if err != nil {
		log.Printf("Failed to upload export %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("Error al archivar el export: %v", err),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Export archivado exitosamente",
		"url":     url,
	})
}

// generar produce el export pedido a partir de los filtros de la query
func (h *ExportHandler) generar(c *fiber.Ctx) (contenido []byte, nombre, contentType string, err error) {
	filtros := filtrosDesdeQuery(c)
	descendente := c.Query("orden", "desc") != "asc"
	formato := c.Query("formato", "csv")

	switch formato {
	case "csv":
		contenido, err = h.service.ExportarCSV(filtros, descendente)
		contentType = "text/csv"
	case "xlsx":
		contenido, err = h.service.ExportarXLSX(filtros, descendente)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return nil, "", "", fmt.Errorf("%w: %q", errFormatoDesconocido, formato)
	}
	if err != nil {
		return nil, "", "", err
	}

	return contenido, application.NombreExport(time.Now(), formato), contentType, nil
}

func respuestaErrorExport(c *fiber.Ctx, err error) error {
	if errors.Is(err, errFormatoDesconocido) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
		"error": err.Error(),
	})
}
