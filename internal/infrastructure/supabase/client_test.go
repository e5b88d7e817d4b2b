package supabase

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cvidaal/jungla-admin/internal/domain"
)

func TestClient_FetchAll(t *testing.T) {
	servidor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/rest/v1/reservas", r.URL.Path)
		assert.Equal(t, "*", r.URL.Query().Get("select"))
		assert.Equal(t, "clave-anonima", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer clave-anonima", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{
				"id": "r1",
				"created_at": "2025-06-01T10:00:00Z",
				"nombre_cumpleanero": "Lucas",
				"nombre_reserva": "Marta Pérez",
				"edad": 7,
				"fecha_reserva": "2025-06-10",
				"hora": "17:00",
				"num_ninos": "12",
				"telefono": "612345678",
				"email": "marta@example.com",
				"es_matinal": false,
				"estado": "CONFIRMADO",
				"pagado": false,
				"precio_total": "135.50",
				"precio_por_nino": 11.25,
				"senal_pagada": 50
			}
		]`))
	}))
	defer servidor.Close()

	cliente := NewClient(servidor.URL, "clave-anonima")

	reservas, err := cliente.FetchAll()
	require.NoError(t, err)
	require.Len(t, reservas, 1)

	r := reservas[0]
	assert.Equal(t, "r1", r.ID)
	assert.Equal(t, "Lucas", r.NombreCumpleanero)
	assert.Equal(t, 7, r.Edad)
	assert.Equal(t, 12, r.NumNinos, "las cadenas numéricas se aceptan")
	assert.Equal(t, 135.50, r.PrecioTotal)
	assert.Equal(t, domain.EstadoConfirmado, r.Estado)
}

func TestClient_FetchAllCoercionaNumericosInvalidos(t *testing.T) {
	servidor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{
				"id": "r1",
				"nombre_cumpleanero": "Lucas",
				"fecha_reserva": "2025-06-10",
				"estado": "PENDIENTE_PAGO",
				"edad": "no-es-un-numero",
				"precio_total": "gratis",
				"senal_pagada": null
			}
		]`))
	}))
	defer servidor.Close()

	cliente := NewClient(servidor.URL, "clave")

	reservas, err := cliente.FetchAll()
	require.NoError(t, err, "los numéricos malformados no rechazan la fila")
	require.Len(t, reservas, 1)

	assert.Zero(t, reservas[0].Edad)
	assert.Zero(t, reservas[0].PrecioTotal)
	assert.Zero(t, reservas[0].SenalPagada)
}

func TestClient_FetchAllErrorDelBackend(t *testing.T) {
	servidor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"message":"mantenimiento"}`))
	}))
	defer servidor.Close()

	cliente := NewClient(servidor.URL, "clave")

	_, err := cliente.FetchAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestClient_UpdatePartial(t *testing.T) {
	var recibido map[string]any

	servidor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/rest/v1/reservas", r.URL.Path)
		assert.Equal(t, "eq.r1", r.URL.Query().Get("id"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "return=minimal", r.Header.Get("Prefer"))

		cuerpo, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(cuerpo, &recibido))

		w.WriteHeader(http.StatusNoContent)
	}))
	defer servidor.Close()

	cliente := NewClient(servidor.URL, "clave")

	err := cliente.UpdatePartial("r1", map[string]any{
		"estado": "COMPLETADO",
		"pagado": true,
	})
	require.NoError(t, err)

	assert.Equal(t, "COMPLETADO", recibido["estado"])
	assert.Equal(t, true, recibido["pagado"])
}

func TestClient_UpdatePartialErrorDelBackend(t *testing.T) {
	servidor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"conflicto"}`))
	}))
	defer servidor.Close()

	cliente := NewClient(servidor.URL, "clave")

	err := cliente.UpdatePartial("r1", map[string]any{"estado": "CANCELADO"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "409")
}
