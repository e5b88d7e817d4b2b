package application

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/cvidaal/jungla-admin/internal/domain"
)

func TestGenerarCSV(t *testing.T) {
	r := reservaDePrueba("r1", "2025-06-10", "17:00", domain.EstadoConfirmado)
	r.NombreCumpleanero = "Lucas"
	r.NombreReserva = "Marta Pérez"
	r.Edad = 7
	r.NumNinos = 12
	r.Telefono = "612345678"
	r.PrecioTotal = 135
	r.SenalPagada = 50

	csv := string(GenerarCSV([]domain.Reserva{r}))
	lineas := strings.Split(csv, "\n")
	require.Len(t, lineas, 2)

	assert.Equal(t, "Fecha,Hora,Cumpleañero,Edad,Niños,Contacto,Teléfono,Estado,Total,Pendiente", lineas[0])
	assert.Equal(t, "2025-06-10,17:00,Lucas,7,12,Marta Pérez,612345678,CONFIRMADO,135.00,85.00", lineas[1])
}

func TestGenerarCSV_SinReservas(t *testing.T) {
	csv := string(GenerarCSV(nil))
	assert.Equal(t, "Fecha,Hora,Cumpleañero,Edad,Niños,Contacto,Teléfono,Estado,Total,Pendiente", csv)
}

func TestGenerarCSV_ComasSinEscapar(t *testing.T) {
	// Los valores no se entrecomillan: una coma embebida desplaza las
	// columnas de su fila (limitación documentada del formato)
	r := reservaDePrueba("r1", "2025-06-10", "17:00", domain.EstadoConfirmado)
	r.NombreReserva = "Pérez, Marta"

	csv := string(GenerarCSV([]domain.Reserva{r}))
	lineas := strings.Split(csv, "\n")
	require.Len(t, lineas, 2)
	assert.Len(t, strings.Split(lineas[1], ","), len(strings.Split(lineas[0], ","))+1)
}

func TestGenerarCSV_PendienteSinRecortar(t *testing.T) {
	r := reservaDePrueba("r1", "2025-06-10", "17:00", domain.EstadoConfirmado)
	r.PrecioTotal = 100
	r.SenalPagada = 150

	csv := string(GenerarCSV([]domain.Reserva{r}))
	assert.True(t, strings.HasSuffix(csv, ",-50.00"), "la señal puede superar el total")
}

func TestGenerarXLSX(t *testing.T) {
	r := reservaDePrueba("r1", "2025-06-10", "17:00", domain.EstadoConfirmado)

	contenido, err := GenerarXLSX([]domain.Reserva{r})
	require.NoError(t, err)
	require.NotEmpty(t, contenido)

	f, err := excelize.OpenReader(bytes.NewReader(contenido))
	require.NoError(t, err)
	defer f.Close()

	cabecera, err := f.GetCellValue("Reservas", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Fecha", cabecera)

	fecha, err := f.GetCellValue("Reservas", "A2")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-10", fecha)
}

func TestNombreExport(t *testing.T) {
	hoy := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "reservas_2025-06-15.csv", NombreExport(hoy, "csv"))
	assert.Equal(t, "reservas_2025-06-15.xlsx", NombreExport(hoy, "xlsx"))
}
