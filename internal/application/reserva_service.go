package application

import (
	"fmt"
	"log"
	"time"

	"github.com/cvidaal/jungla-admin/internal/domain"
	"github.com/cvidaal/jungla-admin/internal/email"
	"github.com/cvidaal/jungla-admin/internal/metrics"
)

// ReservaService orquesta el almacén remoto de reservas, el snapshot en
// memoria y las transiciones de estado
type ReservaService struct {
	store       domain.ReservaStore
	cache       *ReservaCache
	emailClient *email.Client // puede ser nil si SMTP no está configurado
	metrics     *metrics.Metrics
}

// ResultadoPagina es la respuesta del listado filtrado y paginado
type ResultadoPagina struct {
	Reservas     []domain.Reserva `json:"reservas"`
	Pagina       int              `json:"pagina"`
	TotalPaginas int              `json:"totalPaginas"`
	Total        int              `json:"total"`
}

// NewReservaService crea una nueva instancia del servicio de reservas
func NewReservaService(store domain.ReservaStore, emailClient *email.Client, m *metrics.Metrics) *ReservaService {
	return &ReservaService{
		store:       store,
		cache:       NewReservaCache(),
		emailClient: emailClient,
		metrics:     m,
	}
}

// Refrescar vuelca la tabla completa del almacén al snapshot en memoria.
// Si el fetch falla, el snapshot anterior se conserva intacto.
func (s *ReservaService) Refrescar() error {
	reservas, err := s.store.FetchAll()
	if err != nil {
		s.metrics.FetchErroresTotal.Inc()
		return fmt.Errorf("error al cargar reservas: %w", err)
	}

	s.metrics.FetchesTotal.Inc()
	s.cache.Reemplazar(reservas)
	s.metrics.ReservasEnCache.Set(float64(len(reservas)))
	return nil
}

// Reservas devuelve el snapshot actual, cargándolo del almacén la primera vez
func (s *ReservaService) Reservas() ([]domain.Reserva, error) {
	if !s.cache.Cargado() {
		if err := s.Refrescar(); err != nil {
			return nil, err
		}
	}
	return s.cache.Snapshot(), nil
}

// Listar aplica filtros, orden y paginación sobre el snapshot
func (s *ReservaService) Listar(f Filtros, descendente bool, pagina int) (*ResultadoPagina, error) {
	reservas, err := s.Reservas()
	if err != nil {
		return nil, err
	}

	filtradas := OrdenarPorFecha(FiltrarReservas(reservas, f), descendente)
	items, totalPaginas := Paginar(filtradas, pagina)

	return &ResultadoPagina{
		Reservas:     items,
		Pagina:       pagina,
		TotalPaginas: totalPaginas,
		Total:        len(filtradas),
	}, nil
}

// Filtradas devuelve el conjunto filtrado y ordenado sin paginar (para exports)
func (s *ReservaService) Filtradas(f Filtros, descendente bool) ([]domain.Reserva, error) {
	reservas, err := s.Reservas()
	if err != nil {
		return nil, err
	}
	return OrdenarPorFecha(FiltrarReservas(reservas, f), descendente), nil
}

// Stats calcula las estadísticas del dashboard para la fecha de referencia dada
func (s *ReservaService) Stats(hoy time.Time) (DashboardStats, error) {
	reservas, err := s.Reservas()
	if err != nil {
		return DashboardStats{}, err
	}
	return CalcularStats(reservas, hoy), nil
}

// Calendario agrupa por día las reservas del mes indicado (YYYY-MM)
func (s *ReservaService) Calendario(mes string) (map[string][]domain.Reserva, error) {
	reservas, err := s.Reservas()
	if err != nil {
		return nil, err
	}
	return ReservasDelMes(reservas, mes), nil
}

// Dia devuelve las reservas no canceladas de una fecha, ordenadas por hora
func (s *ReservaService) Dia(fecha string) ([]domain.Reserva, error) {
	reservas, err := s.Reservas()
	if err != nil {
		return nil, err
	}
	return ReservasDelDia(reservas, fecha), nil
}

// Detalle devuelve una reserva del snapshot por su ID
func (s *ReservaService) Detalle(id string) (*domain.Reserva, error) {
	if _, err := s.Reservas(); err != nil {
		return nil, err
	}

	reserva, ok := s.cache.Buscar(id)
	if !ok {
		return nil, domain.ErrReservaNoEncontrada
	}
	return reserva, nil
}

// CambiarEstado actualiza el estado de una reserva en el almacén y, si la
// escritura se confirma, fusiona el cambio en el snapshot. La marca de pago
// se deriva del nuevo estado. Si la escritura falla, el snapshot queda como
// estaba y el error se devuelve al llamador sin reintentos.
func (s *ReservaService) CambiarEstado(id string, estado domain.EstadoReserva) (*domain.Reserva, error) {
	if !estado.EsValido() {
		return nil, fmt.Errorf("%w: %q", domain.ErrEstadoInvalido, estado)
	}

	if _, err := s.Reservas(); err != nil {
		return nil, err
	}
	if _, ok := s.cache.Buscar(id); !ok {
		return nil, domain.ErrReservaNoEncontrada
	}

	pagado := estado == domain.EstadoCompletado
	campos := map[string]any{
		"estado": string(estado),
		"pagado": pagado,
	}

	if err := s.store.UpdatePartial(id, campos); err != nil {
		s.metrics.UpdateErroresTotal.Inc()
		return nil, fmt.Errorf("error al actualizar estado de reserva: %w", err)
	}
	s.metrics.UpdatesTotal.Inc()

	actualizada, ok := s.cache.AplicarEstado(id, estado, pagado)
	if !ok {
		// La reserva desapareció del snapshot entre la comprobación y el merge
		return nil, domain.ErrReservaNoEncontrada
	}

	if estado == domain.EstadoConfirmado && s.emailClient != nil && actualizada.Email != "" {
		go s.enviarConfirmacion(*actualizada)
	}

	return actualizada, nil
}

// ExportarCSV genera el export CSV del conjunto filtrado sin paginar
func (s *ReservaService) ExportarCSV(f Filtros, descendente bool) ([]byte, error) {
	reservas, err := s.Filtradas(f, descendente)
	if err != nil {
		return nil, err
	}
	s.metrics.ExportsTotal.WithLabelValues("csv").Inc()
	return GenerarCSV(reservas), nil
}

// ExportarXLSX genera el export Excel del conjunto filtrado sin paginar
func (s *ReservaService) ExportarXLSX(f Filtros, descendente bool) ([]byte, error) {
	reservas, err := s.Filtradas(f, descendente)
	if err != nil {
		return nil, err
	}
	s.metrics.ExportsTotal.WithLabelValues("xlsx").Inc()
	return GenerarXLSX(reservas)
}

// enviarConfirmacion envía el email de confirmación en segundo plano;
// un fallo solo se registra, nunca revierte la transición
func (s *ReservaService) enviarConfirmacion(r domain.Reserva) {
	info := email.ReservaInfo{
		ID:                r.ID,
		ContactoEmail:     r.Email,
		ContactoNombre:    r.NombreReserva,
		NombreCumpleanero: r.NombreCumpleanero,
		Edad:              r.Edad,
		FechaReserva:      r.FechaReserva,
		Hora:              r.Hora,
		NumNinos:          r.NumNinos,
		EsMatinal:         r.EsMatinal,
		PrecioTotal:       r.PrecioTotal,
		SenalPagada:       r.SenalPagada,
		Pendiente:         r.Pendiente(),
	}

	if err := s.emailClient.SendReservaConfirmacion(info); err != nil {
		log.Printf("Error al enviar email de confirmación de la reserva %s: %v", r.ID, err)
	}
}
