package application

import (
	"sort"
	"time"

	"github.com/cvidaal/jungla-admin/internal/domain"
)

// DashboardStats contiene los contadores derivados del dashboard y las
// dos listas acotadas que lo acompañan
type DashboardStats struct {
	CumplesHoy    int              `json:"cumplesHoy"`
	CumplesSemana int              `json:"cumplesSemana"`
	CumplesMes    int              `json:"cumplesMes"`
	IngresosMes   float64          `json:"ingresosMes"`
	ListaHoy      []domain.Reserva `json:"listaHoy"`
	ListaProximos []domain.Reserva `json:"listaProximos"`
}

// CalcularStats calcula las estadísticas del dashboard para la fecha de
// referencia dada. Las reservas canceladas quedan fuera de todos los
// contadores; los ingresos del mes solo suman reservas completadas.
func CalcularStats(reservas []domain.Reserva, hoy time.Time) DashboardStats {
	hoyStr := hoy.Format("2006-01-02")
	limiteSemana := hoy.AddDate(0, 0, 7).Format("2006-01-02")
	inicioMes := time.Date(hoy.Year(), hoy.Month(), 1, 0, 0, 0, 0, hoy.Location()).Format("2006-01-02")
	finMes := time.Date(hoy.Year(), hoy.Month()+1, 0, 0, 0, 0, 0, hoy.Location()).Format("2006-01-02")

	stats := DashboardStats{
		ListaHoy:      []domain.Reserva{},
		ListaProximos: []domain.Reserva{},
	}

	for _, r := range reservas {
		if r.Estado == domain.EstadoCancelado {
			continue
		}

		if r.FechaReserva == hoyStr {
			stats.CumplesHoy++
			stats.ListaHoy = append(stats.ListaHoy, r)
		}

		// Próximos 7 días: estrictamente después de hoy e incluyendo hoy+7
		if r.FechaReserva > hoyStr && r.FechaReserva <= limiteSemana {
			stats.CumplesSemana++
			stats.ListaProximos = append(stats.ListaProximos, r)
		}

		if r.FechaReserva >= inicioMes && r.FechaReserva <= finMes {
			stats.CumplesMes++
			if r.Estado == domain.EstadoCompletado {
				stats.IngresosMes += r.PrecioTotal
			}
		}
	}

	sort.SliceStable(stats.ListaHoy, func(i, j int) bool {
		return stats.ListaHoy[i].Hora < stats.ListaHoy[j].Hora
	})

	sort.SliceStable(stats.ListaProximos, func(i, j int) bool {
		a, b := stats.ListaProximos[i], stats.ListaProximos[j]
		if a.FechaReserva != b.FechaReserva {
			return a.FechaReserva < b.FechaReserva
		}
		return a.Hora < b.Hora
	})
	if len(stats.ListaProximos) > 5 {
		stats.ListaProximos = stats.ListaProximos[:5]
	}

	return stats
}
