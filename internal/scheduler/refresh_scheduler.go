package scheduler

import (
	"log"
	"time"

	"github.com/cvidaal/jungla-admin/internal/application"
)

// RefreshScheduler refresca periódicamente el snapshot de reservas
// reemitiendo el fetch completo contra el almacén
type RefreshScheduler struct {
	service   *application.ReservaService
	intervalo time.Duration
	ticker    *time.Ticker
	done      chan struct{}
}

// NewRefreshScheduler crea una nueva instancia del scheduler de refresco
func NewRefreshScheduler(service *application.ReservaService, intervalo time.Duration) *RefreshScheduler {
	return &RefreshScheduler{
		service:   service,
		intervalo: intervalo,
		done:      make(chan struct{}),
	}
}

// Start inicia el scheduler: ejecuta un refresco inmediato y después uno por intervalo
func (s *RefreshScheduler) Start() {
	log.Printf("🕐 Scheduler de refresco iniciado - Se ejecutará cada %s", s.intervalo)

	s.Refrescar()

	s.ticker = time.NewTicker(s.intervalo)
	go func() {
		for {
			select {
			case <-s.ticker.C:
				s.Refrescar()
			case <-s.done:
				return
			}
		}
	}()
}

// Stop detiene el scheduler
func (s *RefreshScheduler) Stop() {
	if s.ticker != nil {
		s.ticker.Stop()
		close(s.done)
		log.Println("🛑 Scheduler de refresco detenido")
	}
}

// Refrescar reemite el fetch completo; si falla, el snapshot anterior se conserva
func (s *RefreshScheduler) Refrescar() {
	log.Println("🔄 Ejecutando refresco del snapshot de reservas...")

	if err := s.service.Refrescar(); err != nil {
		log.Printf("❌ Error refrescando reservas: %v", err)
	} else {
		log.Println("✅ Snapshot de reservas actualizado exitosamente")
	}
}
