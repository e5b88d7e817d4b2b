package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/cvidaal/jungla-admin/internal/domain"
)

type reservaRepository struct {
	db *sql.DB
}

// NewReservaRepository crea un almacén de reservas sobre Postgres directo,
// alternativa al cliente REST para despliegues con acceso a la base
func NewReservaRepository(db *sql.DB) domain.ReservaStore {
	return &reservaRepository{db: db}
}

// FetchAll lee la tabla completa de reservas
func (r *reservaRepository) FetchAll() ([]domain.Reserva, error) {
	query := `
		SELECT
			id,
			created_at,
			nombre_cumpleanero,
			nombre_reserva,
			edad,
			fecha_reserva,
			hora,
			num_ninos,
			telefono,
			email,
			es_matinal,
			estado,
			pagado,
			precio_total,
			precio_por_nino,
			senal_pagada
		FROM reservas
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error al obtener reservas: %w", err)
	}
	defer rows.Close()

	var reservas []domain.Reserva
	for rows.Next() {
		var reserva domain.Reserva
		var edad, numNinos sql.NullInt64
		var precioTotal, precioPorNino, senalPagada sql.NullFloat64
		var createdAt, telefono, email sql.NullString

		err := rows.Scan(
			&reserva.ID,
			&createdAt,
			&reserva.NombreCumpleanero,
			&reserva.NombreReserva,
			&edad,
			&reserva.FechaReserva,
			&reserva.Hora,
			&numNinos,
			&telefono,
			&email,
			&reserva.EsMatinal,
			&reserva.Estado,
			&reserva.Pagado,
			&precioTotal,
			&precioPorNino,
			&senalPagada,
		)
		if err != nil {
			return nil, fmt.Errorf("error al escanear reserva: %w", err)
		}

		// Los NULL numéricos se degradan a cero, igual que en el cliente REST
		reserva.CreatedAt = createdAt.String
		reserva.Edad = int(edad.Int64)
		reserva.NumNinos = int(numNinos.Int64)
		reserva.Telefono = telefono.String
		reserva.Email = email.String
		reserva.PrecioTotal = precioTotal.Float64
		reserva.PrecioPorNino = precioPorNino.Float64
		reserva.SenalPagada = senalPagada.Float64

		reservas = append(reservas, reserva)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al recorrer reservas: %w", err)
	}

	return reservas, nil
}

// UpdatePartial aplica una actualización parcial sobre una reserva
func (r *reservaRepository) UpdatePartial(id string, campos map[string]any) error {
	if len(campos) == 0 {
		return fmt.Errorf("no hay campos que actualizar")
	}

	set := make([]string, 0, len(campos))
	args := make([]any, 0, len(campos)+1)
	i := 1
	for columna, valor := range campos {
		set = append(set, fmt.Sprintf("%s = $%d", columna, i))
		args = append(args, valor)
		i++
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE reservas SET %s WHERE id = $%d", strings.Join(set, ", "), i)

	result, err := r.db.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("error al actualizar reserva: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error al verificar filas afectadas: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("reserva con ID %s no encontrada: %w", id, domain.ErrReservaNoEncontrada)
	}

	return nil
}
