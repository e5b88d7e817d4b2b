package application

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cvidaal/jungla-admin/internal/domain"
	"github.com/cvidaal/jungla-admin/internal/metrics"
)

type llamadaUpdate struct {
	id     string
	campos map[string]any
}

// fakeStore implementa domain.ReservaStore en memoria para las pruebas
type fakeStore struct {
	reservas  []domain.Reserva
	fetchErr  error
	updateErr error
	updates   []llamadaUpdate
}

func (f *fakeStore) FetchAll() ([]domain.Reserva, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.reservas, nil
}

func (f *fakeStore) UpdatePartial(id string, campos map[string]any) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updates = append(f.updates, llamadaUpdate{id: id, campos: campos})
	return nil
}

func newTestService(store domain.ReservaStore) *ReservaService {
	return NewReservaService(store, nil, metrics.New(prometheus.NewRegistry()))
}

func TestReservaService_ReservasCargaPerezosa(t *testing.T) {
	store := &fakeStore{reservas: []domain.Reserva{
		reservaDePrueba("r1", "2025-06-10", "17:00", domain.EstadoConfirmado),
	}}
	svc := newTestService(store)

	reservas, err := svc.Reservas()
	require.NoError(t, err)
	assert.Len(t, reservas, 1)
}

func TestReservaService_RefrescarConservaSnapshotAnteFallo(t *testing.T) {
	store := &fakeStore{reservas: []domain.Reserva{
		reservaDePrueba("r1", "2025-06-10", "17:00", domain.EstadoConfirmado),
	}}
	svc := newTestService(store)

	require.NoError(t, svc.Refrescar())

	// El siguiente fetch falla: el snapshot anterior queda intacto
	store.fetchErr = errors.New("backend caído")
	err := svc.Refrescar()
	require.Error(t, err)

	reservas, err := svc.Reservas()
	require.NoError(t, err)
	require.Len(t, reservas, 1)
	assert.Equal(t, "r1", reservas[0].ID)
}

func TestReservaService_Listar(t *testing.T) {
	store := &fakeStore{reservas: []domain.Reserva{
		reservaDePrueba("r1", "2025-06-15", "17:00", domain.EstadoConfirmado),
		reservaDePrueba("r2", "2025-06-10", "12:00", domain.EstadoPendientePago),
		reservaDePrueba("r3", "2025-06-20", "17:00", domain.EstadoConfirmado),
	}}
	svc := newTestService(store)

	resultado, err := svc.Listar(Filtros{Estado: domain.EstadoConfirmado}, true, 1)
	require.NoError(t, err)

	assert.Equal(t, 2, resultado.Total)
	assert.Equal(t, 1, resultado.TotalPaginas)
	require.Len(t, resultado.Reservas, 2)
	assert.Equal(t, "r3", resultado.Reservas[0].ID, "orden descendente por fecha")
	assert.Equal(t, "r1", resultado.Reservas[1].ID)
}

func TestReservaService_CambiarEstadoConfirmar(t *testing.T) {
	store := &fakeStore{reservas: []domain.Reserva{
		reservaDePrueba("r1", "2025-06-10", "17:00", domain.EstadoPendientePago),
	}}
	svc := newTestService(store)

	actualizada, err := svc.CambiarEstado("r1", domain.EstadoConfirmado)
	require.NoError(t, err)

	assert.Equal(t, domain.EstadoConfirmado, actualizada.Estado)
	assert.False(t, actualizada.Pagado, "confirmar no marca la reserva como pagada")

	require.Len(t, store.updates, 1)
	assert.Equal(t, "r1", store.updates[0].id)
	assert.Equal(t, "CONFIRMADO", store.updates[0].campos["estado"])
	assert.Equal(t, false, store.updates[0].campos["pagado"])
}

func TestReservaService_CambiarEstadoCompletar(t *testing.T) {
	store := &fakeStore{reservas: []domain.Reserva{
		reservaDePrueba("r1", "2025-06-10", "17:00", domain.EstadoConfirmado),
	}}
	svc := newTestService(store)

	actualizada, err := svc.CambiarEstado("r1", domain.EstadoCompletado)
	require.NoError(t, err)

	assert.Equal(t, domain.EstadoCompletado, actualizada.Estado)
	assert.True(t, actualizada.Pagado, "completar deriva pagado=true")

	require.Len(t, store.updates, 1)
	assert.Equal(t, true, store.updates[0].campos["pagado"])
}

func TestReservaService_CambiarEstadoInvalido(t *testing.T) {
	store := &fakeStore{reservas: []domain.Reserva{
		reservaDePrueba("r1", "2025-06-10", "17:00", domain.EstadoPendientePago),
	}}
	svc := newTestService(store)

	_, err := svc.CambiarEstado("r1", "ARCHIVADO")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEstadoInvalido)
	assert.Empty(t, store.updates, "no se escribe nada en el almacén")
}

func TestReservaService_CambiarEstadoNoEncontrada(t *testing.T) {
	store := &fakeStore{reservas: []domain.Reserva{
		reservaDePrueba("r1", "2025-06-10", "17:00", domain.EstadoPendientePago),
	}}
	svc := newTestService(store)

	_, err := svc.CambiarEstado("desconocida", domain.EstadoConfirmado)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReservaNoEncontrada)
	assert.Empty(t, store.updates)
}

func TestReservaService_CambiarEstadoFalloDejaCacheIntacto(t *testing.T) {
	store := &fakeStore{reservas: []domain.Reserva{
		reservaDePrueba("r1", "2025-06-10", "17:00", domain.EstadoPendientePago),
	}}
	svc := newTestService(store)

	// Poblar el snapshot antes de romper las escrituras
	_, err := svc.Reservas()
	require.NoError(t, err)

	store.updateErr = errors.New("escritura rechazada")
	_, err = svc.CambiarEstado("r1", domain.EstadoConfirmado)
	require.Error(t, err)

	reserva, err := svc.Detalle("r1")
	require.NoError(t, err)
	assert.Equal(t, domain.EstadoPendientePago, reserva.Estado, "el estado previo se conserva")
	assert.False(t, reserva.Pagado)
}

func TestReservaService_Detalle(t *testing.T) {
	store := &fakeStore{reservas: []domain.Reserva{
		reservaDePrueba("r1", "2025-06-10", "17:00", domain.EstadoConfirmado),
	}}
	svc := newTestService(store)

	reserva, err := svc.Detalle("r1")
	require.NoError(t, err)
	assert.Equal(t, "r1", reserva.ID)

	_, err = svc.Detalle("desconocida")
	assert.ErrorIs(t, err, domain.ErrReservaNoEncontrada)
}

func TestReservaService_ExportarCSVFiltrado(t *testing.T) {
	confirmada := reservaDePrueba("r1", "2025-06-10", "17:00", domain.EstadoConfirmado)
	cancelada := reservaDePrueba("r2", "2025-06-11", "12:00", domain.EstadoCancelado)
	store := &fakeStore{reservas: []domain.Reserva{confirmada, cancelada}}
	svc := newTestService(store)

	csv, err := svc.ExportarCSV(Filtros{Estado: domain.EstadoConfirmado}, false)
	require.NoError(t, err)

	assert.Contains(t, string(csv), "2025-06-10")
	assert.NotContains(t, string(csv), "2025-06-11")
}
