package application

import (
	"sort"
	"strings"

	"github.com/cvidaal/jungla-admin/internal/domain"
)

// ReservasPorDia agrupa las reservas por fecha de reserva. Las canceladas
// se incluyen en el mapa; es la vista de día la que las descarta.
func ReservasPorDia(reservas []domain.Reserva) map[string][]domain.Reserva {
	porDia := make(map[string][]domain.Reserva)
	for _, r := range reservas {
		porDia[r.FechaReserva] = append(porDia[r.FechaReserva], r)
	}
	return porDia
}

// ReservasDelMes agrupa por día las reservas cuyo mes coincide con el
// indicado (formato YYYY-MM)
func ReservasDelMes(reservas []domain.Reserva, mes string) map[string][]domain.Reserva {
	porDia := make(map[string][]domain.Reserva)
	prefijo := mes + "-"
	for _, r := range reservas {
		if strings.HasPrefix(r.FechaReserva, prefijo) {
			porDia[r.FechaReserva] = append(porDia[r.FechaReserva], r)
		}
	}
	return porDia
}

// ReservasDelDia devuelve las reservas no canceladas de una fecha,
// ordenadas por hora
func ReservasDelDia(reservas []domain.Reserva, fecha string) []domain.Reserva {
	dia := make([]domain.Reserva, 0)
	for _, r := range reservas {
		if r.FechaReserva == fecha && r.Estado != domain.EstadoCancelado {
			dia = append(dia, r)
		}
	}

	sort.SliceStable(dia, func(i, j int) bool {
		return dia[i].Hora < dia[j].Hora
	})

	return dia
}
