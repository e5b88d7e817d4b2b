package application

import (
	"sync"
	"time"

	"github.com/cvidaal/jungla-admin/internal/domain"
)

// ReservaCache mantiene en memoria el último snapshot del almacén de
// reservas y aplica sobre él las actualizaciones optimistas
type ReservaCache struct {
	mu                  sync.RWMutex
	reservas            []domain.Reserva
	ultimaActualizacion time.Time
	cargado             bool
}

// NewReservaCache crea un caché de reservas vacío
func NewReservaCache() *ReservaCache {
	return &ReservaCache{}
}

// Reemplazar sustituye el snapshot completo tras un fetch exitoso
func (c *ReservaCache) Reemplazar(reservas []domain.Reserva) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.reservas = make([]domain.Reserva, len(reservas))
	copy(c.reservas, reservas)
	c.ultimaActualizacion = time.Now()
	c.cargado = true
}

// Snapshot devuelve una copia del snapshot actual
func (c *ReservaCache) Snapshot() []domain.Reserva {
	c.mu.RLock()
	defer c.mu.RUnlock()

	copia := make([]domain.Reserva, len(c.reservas))
	copy(copia, c.reservas)
	return copia
}

// Buscar localiza una reserva por su ID
func (c *ReservaCache) Buscar(id string) (*domain.Reserva, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, r := range c.reservas {
		if r.ID == id {
			copia := r
			return &copia, true
		}
	}
	return nil, false
}

// AplicarEstado fusiona en el snapshot el nuevo estado y la marca de
// pago de una reserva, y devuelve la reserva resultante
func (c *ReservaCache) AplicarEstado(id string, estado domain.EstadoReserva, pagado bool) (*domain.Reserva, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.reservas {
		if c.reservas[i].ID == id {
			c.reservas[i].Estado = estado
			c.reservas[i].Pagado = pagado
			copia := c.reservas[i]
			return &copia, true
		}
	}
	return nil, false
}

// Cargado indica si el caché contiene ya un snapshot del almacén
func (c *ReservaCache) Cargado() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cargado
}

// Tamano devuelve el número de reservas del snapshot
func (c *ReservaCache) Tamano() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.reservas)
}

// UltimaActualizacion devuelve el instante del último reemplazo del snapshot
func (c *ReservaCache) UltimaActualizacion() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ultimaActualizacion
}
