package application

import (
	"sort"
	"strings"

	"github.com/cvidaal/jungla-admin/internal/domain"
)

// TamanoPagina es el tamaño fijo de página del listado de reservas
const TamanoPagina = 10

// Filtros representa los criterios de filtrado del listado de reservas.
// Los criterios vacíos no filtran nada; los activos se combinan con AND.
type Filtros struct {
	Estado     domain.EstadoReserva
	Busqueda   string
	FechaDesde string // YYYY-MM-DD, inclusivo
	FechaHasta string // YYYY-MM-DD, inclusivo
}

// FiltrarReservas aplica los filtros sobre el conjunto de reservas sin modificarlo
func FiltrarReservas(reservas []domain.Reserva, f Filtros) []domain.Reserva {
	busqueda := strings.ToLower(f.Busqueda)

	resultado := make([]domain.Reserva, 0, len(reservas))
	for _, r := range reservas {
		if f.Estado != "" && f.Estado != domain.EstadoTodos && r.Estado != f.Estado {
			continue
		}

		// La búsqueda compara contra el cumpleañero, el contacto y el teléfono
		// tal cual está almacenado (sin normalizar puntuación)
		if busqueda != "" {
			if !strings.Contains(strings.ToLower(r.NombreCumpleanero), busqueda) &&
				!strings.Contains(strings.ToLower(r.NombreReserva), busqueda) &&
				!strings.Contains(r.Telefono, busqueda) {
				continue
			}
		}

		// Las fechas YYYY-MM-DD de ancho fijo se comparan como cadenas
		if f.FechaDesde != "" && r.FechaReserva < f.FechaDesde {
			continue
		}
		if f.FechaHasta != "" && r.FechaReserva > f.FechaHasta {
			continue
		}

		resultado = append(resultado, r)
	}

	return resultado
}

// OrdenarPorFecha devuelve una copia ordenada por fecha de reserva.
// El orden es estable y no hay clave secundaria: los empates conservan
// el orden de entrada.
func OrdenarPorFecha(reservas []domain.Reserva, descendente bool) []domain.Reserva {
	resultado := make([]domain.Reserva, len(reservas))
	copy(resultado, reservas)

	sort.SliceStable(resultado, func(i, j int) bool {
		if descendente {
			return resultado[i].FechaReserva > resultado[j].FechaReserva
		}
		return resultado[i].FechaReserva < resultado[j].FechaReserva
	})

	return resultado
}

// Paginar devuelve la página solicitada (1-based) y el total de páginas.
// Una página fuera de rango devuelve una secuencia vacía, nunca un error.
func Paginar(reservas []domain.Reserva, pagina int) ([]domain.Reserva, int) {
	totalPaginas := (len(reservas) + TamanoPagina - 1) / TamanoPagina

	if pagina < 1 {
		pagina = 1
	}

	inicio := (pagina - 1) * TamanoPagina
	if inicio >= len(reservas) {
		return []domain.Reserva{}, totalPaginas
	}

	fin := inicio + TamanoPagina
	if fin > len(reservas) {
		fin = len(reservas)
	}

	return reservas[inicio:fin], totalPaginas
}
