package application

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/cvidaal/jungla-admin/internal/domain"
)

// columnasExport define el orden fijo de columnas del export
var columnasExport = []string{
	"Fecha", "Hora", "Cumpleañero", "Edad", "Niños",
	"Contacto", "Teléfono", "Estado", "Total", "Pendiente",
}

// GenerarCSV genera el export CSV de las reservas: una fila por reserva,
// valores unidos por comas sin entrecomillar. Un nombre que contenga una
// coma rompería su fila (limitación conocida del formato exportado).
func GenerarCSV(reservas []domain.Reserva) []byte {
	lineas := make([]string, 0, len(reservas)+1)
	lineas = append(lineas, strings.Join(columnasExport, ","))
	for _, r := range reservas {
		lineas = append(lineas, strings.Join(filaExport(r), ","))
	}
	return []byte(strings.Join(lineas, "\n"))
}

// GenerarXLSX genera el mismo export en formato Excel
func GenerarXLSX(reservas []domain.Reserva) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const hoja = "Reservas"
	if err := f.SetSheetName("Sheet1", hoja); err != nil {
		return nil, fmt.Errorf("error al preparar la hoja de export: %w", err)
	}

	for i, col := range columnasExport {
		celda, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("error al calcular celda de cabecera: %w", err)
		}
		if err := f.SetCellValue(hoja, celda, col); err != nil {
			return nil, fmt.Errorf("error al escribir cabecera: %w", err)
		}
	}

	for fila, r := range reservas {
		for i, valor := range filaExport(r) {
			celda, err := excelize.CoordinatesToCellName(i+1, fila+2)
			if err != nil {
				return nil, fmt.Errorf("error al calcular celda: %w", err)
			}
			if err := f.SetCellValue(hoja, celda, valor); err != nil {
				return nil, fmt.Errorf("error al escribir fila de export: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("error al generar XLSX: %w", err)
	}
	return buf.Bytes(), nil
}

// NombreExport devuelve el nombre de archivo del export para la fecha dada
func NombreExport(hoy time.Time, formato string) string {
	return fmt.Sprintf("reservas_%s.%s", hoy.Format("2006-01-02"), formato)
}

func filaExport(r domain.Reserva) []string {
	return []string{
		r.FechaReserva,
		r.Hora,
		r.NombreCumpleanero,
		strconv.Itoa(r.Edad),
		strconv.Itoa(r.NumNinos),
		r.NombreReserva,
		r.Telefono,
		string(r.Estado),
		fmt.Sprintf("%.2f", r.PrecioTotal),
		fmt.Sprintf("%.2f", r.Pendiente()),
	}
}
