package domain

// EstadoReserva representa el estado del ciclo de vida de una reserva
type EstadoReserva string

const (
	EstadoPendientePago EstadoReserva = "PENDIENTE_PAGO"
	EstadoConfirmado    EstadoReserva = "CONFIRMADO"
	EstadoCompletado    EstadoReserva = "COMPLETADO"
	EstadoCancelado     EstadoReserva = "CANCELADO"

	// EstadoTodos es el comodín de filtrado, no es un estado almacenable
	EstadoTodos EstadoReserva = "TODOS"
)

// Reserva representa una reserva de cumpleaños
type Reserva struct {
	ID                string        `json:"id"`
	CreatedAt         string        `json:"created_at"`
	NombreCumpleanero string        `json:"nombre_cumpleanero"`
	NombreReserva     string        `json:"nombre_reserva"`
	Edad              int           `json:"edad"`
	FechaReserva      string        `json:"fecha_reserva"` // Formato: YYYY-MM-DD
	Hora              string        `json:"hora"`          // Formato: HH:MM
	NumNinos          int           `json:"num_ninos"`
	Telefono          string        `json:"telefono"`
	Email             string        `json:"email"`
	EsMatinal         bool          `json:"es_matinal"`
	Estado            EstadoReserva `json:"estado"`
	Pagado            bool          `json:"pagado"`
	PrecioTotal       float64       `json:"precio_total"`
	PrecioPorNino     float64       `json:"precio_por_nino"`
	SenalPagada       float64       `json:"senal_pagada"`
}

// Pendiente devuelve el importe pendiente de pago. Puede ser negativo
// si la señal pagada supera el precio total.
func (r *Reserva) Pendiente() float64 {
	return r.PrecioTotal - r.SenalPagada
}

// EsValido indica si el estado es uno de los cuatro estados almacenables
func (e EstadoReserva) EsValido() bool {
	switch e {
	case EstadoPendientePago, EstadoConfirmado, EstadoCompletado, EstadoCancelado:
		return true
	}
	return false
}

// EsFinal indica si el estado es terminal: desde COMPLETADO y CANCELADO
// no se ofrece ninguna transición
func (e EstadoReserva) EsFinal() bool {
	return e == EstadoCompletado || e == EstadoCancelado
}

// TransicionesDisponibles devuelve los estados que se ofrecen desde el estado actual
func TransicionesDisponibles(e EstadoReserva) []EstadoReserva {
	switch e {
	case EstadoPendientePago:
		return []EstadoReserva{EstadoConfirmado, EstadoCancelado}
	case EstadoConfirmado:
		return []EstadoReserva{EstadoCompletado, EstadoCancelado}
	}
	return nil
}

// ReservaStore define las operaciones disponibles contra el almacén remoto de reservas
type ReservaStore interface {
	// FetchAll lee la tabla completa de reservas
	FetchAll() ([]Reserva, error)
	// UpdatePartial aplica una actualización parcial sobre una reserva
	UpdatePartial(id string, campos map[string]any) error
}
