package supabase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cvidaal/jungla-admin/internal/domain"
)

const tablaReservas = "reservas"

// Client es el cliente REST del almacén de reservas (PostgREST)
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient crea un cliente contra el proyecto Supabase indicado
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// FetchAll lee la tabla completa de reservas
func (c *Client) FetchAll() ([]domain.Reserva, error) {
	endpoint := fmt.Sprintf("%s/rest/v1/%s?select=*", c.baseURL, tablaReservas)

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("error al crear petición: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error al consultar reservas: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		cuerpo, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("el almacén de reservas respondió %d: %s", resp.StatusCode, string(cuerpo))
	}

	var filas []reservaRow
	if err := json.NewDecoder(resp.Body).Decode(&filas); err != nil {
		return nil, fmt.Errorf("error al decodificar reservas: %w", err)
	}

	reservas := make([]domain.Reserva, len(filas))
	for i, fila := range filas {
		reservas[i] = fila.aDominio()
	}
	return reservas, nil
}

// UpdatePartial aplica una actualización parcial sobre la fila indicada
func (c *Client) UpdatePartial(id string, campos map[string]any) error {
	endpoint := fmt.Sprintf("%s/rest/v1/%s?id=eq.%s", c.baseURL, tablaReservas, url.QueryEscape(id))

	cuerpo, err := json.Marshal(campos)
	if err != nil {
		return fmt.Errorf("error al serializar campos: %w", err)
	}

	req, err := http.NewRequest(http.MethodPatch, endpoint, bytes.NewReader(cuerpo))
	if err != nil {
		return fmt.Errorf("error al crear petición: %w", err)
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=minimal")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("error al actualizar reserva: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		detalle, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("el almacén de reservas respondió %d: %s", resp.StatusCode, string(detalle))
	}

	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
}

// reservaRow refleja una fila tal y como la devuelve el almacén. Los
// campos numéricos toleran valores no numéricos degradándolos a cero
// en lugar de rechazar la fila.
type reservaRow struct {
	ID                string         `json:"id"`
	CreatedAt         string         `json:"created_at"`
	NombreCumpleanero string         `json:"nombre_cumpleanero"`
	NombreReserva     string         `json:"nombre_reserva"`
	Edad              numeroFlexible `json:"edad"`
	FechaReserva      string         `json:"fecha_reserva"`
	Hora              string         `json:"hora"`
	NumNinos          numeroFlexible `json:"num_ninos"`
	Telefono          string         `json:"telefono"`
	Email             string         `json:"email"`
	EsMatinal         bool           `json:"es_matinal"`
	Estado            string         `json:"estado"`
	Pagado            bool           `json:"pagado"`
	PrecioTotal       numeroFlexible `json:"precio_total"`
	PrecioPorNino     numeroFlexible `json:"precio_por_nino"`
	SenalPagada       numeroFlexible `json:"senal_pagada"`
}

func (r reservaRow) aDominio() domain.Reserva {
	return domain.Reserva{
		ID:                r.ID,
		CreatedAt:         r.CreatedAt,
		NombreCumpleanero: r.NombreCumpleanero,
		NombreReserva:     r.NombreReserva,
		Edad:              int(r.Edad),
		FechaReserva:      r.FechaReserva,
		Hora:              r.Hora,
		NumNinos:          int(r.NumNinos),
		Telefono:          r.Telefono,
		Email:             r.Email,
		EsMatinal:         r.EsMatinal,
		Estado:            domain.EstadoReserva(r.Estado),
		Pagado:            r.Pagado,
		PrecioTotal:       float64(r.PrecioTotal),
		PrecioPorNino:     float64(r.PrecioPorNino),
		SenalPagada:       float64(r.SenalPagada),
	}
}

// numeroFlexible acepta números JSON o cadenas numéricas; cualquier otro
// valor se degrada a cero
type numeroFlexible float64

func (n *numeroFlexible) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*n = 0
		return nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*n = 0
		return nil
	}

	*n = numeroFlexible(v)
	return nil
}
