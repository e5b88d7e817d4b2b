package domain

import "errors"

var (
	// ErrReservaNoEncontrada se devuelve cuando el ID no existe en el snapshot ni en el almacén
	ErrReservaNoEncontrada = errors.New("reserva no encontrada")
	// ErrEstadoInvalido se devuelve cuando el estado solicitado no es uno de los cuatro conocidos
	ErrEstadoInvalido = errors.New("estado de reserva inválido")
)
