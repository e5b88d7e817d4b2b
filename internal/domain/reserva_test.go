package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPendiente(t *testing.T) {
	r := Reserva{PrecioTotal: 135, SenalPagada: 50}
	assert.Equal(t, 85.0, r.Pendiente())
}

func TestPendienteNegativo(t *testing.T) {
	// La señal puede superar el total y el pendiente no se recorta a cero
	r := Reserva{PrecioTotal: 100, SenalPagada: 150}
	assert.Equal(t, -50.0, r.Pendiente())
}

func TestEsValido(t *testing.T) {
	casos := []struct {
		estado EstadoReserva
		valido bool
	}{
		{EstadoPendientePago, true},
		{EstadoConfirmado, true},
		{EstadoCompletado, true},
		{EstadoCancelado, true},
		{EstadoTodos, false},
		{EstadoReserva("confirmado"), false},
		{EstadoReserva(""), false},
	}

	for _, caso := range casos {
		assert.Equal(t, caso.valido, caso.estado.EsValido(), "estado %q", caso.estado)
	}
}

func TestEsFinal(t *testing.T) {
	assert.False(t, EstadoPendientePago.EsFinal())
	assert.False(t, EstadoConfirmado.EsFinal())
	assert.True(t, EstadoCompletado.EsFinal())
	assert.True(t, EstadoCancelado.EsFinal())
}

func TestTransicionesDisponibles(t *testing.T) {
	assert.Equal(t,
		[]EstadoReserva{EstadoConfirmado, EstadoCancelado},
		TransicionesDisponibles(EstadoPendientePago))

	assert.Equal(t,
		[]EstadoReserva{EstadoCompletado, EstadoCancelado},
		TransicionesDisponibles(EstadoConfirmado))

	assert.Empty(t, TransicionesDisponibles(EstadoCompletado))
	assert.Empty(t, TransicionesDisponibles(EstadoCancelado))
}
