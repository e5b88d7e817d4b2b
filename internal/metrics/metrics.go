package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics agrupa las métricas Prometheus del servicio de reservas
type Metrics struct {
	FetchesTotal       prometheus.Counter
	FetchErroresTotal  prometheus.Counter
	UpdatesTotal       prometheus.Counter
	UpdateErroresTotal prometheus.Counter
	ExportsTotal       *prometheus.CounterVec
	ReservasEnCache    prometheus.Gauge
}

// New crea y registra las métricas en el registro indicado
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		FetchesTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "jungla_reservas_fetches_total",
			Help: "Total number of full fetches against the record store",
		}),

		FetchErroresTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "jungla_reservas_fetch_errors_total",
			Help: "Total number of failed fetches",
		}),

		UpdatesTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "jungla_reservas_updates_total",
			Help: "Total number of partial updates against the record store",
		}),

		UpdateErroresTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "jungla_reservas_update_errors_total",
			Help: "Total number of failed partial updates",
		}),

		ExportsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "jungla_reservas_exports_total",
			Help: "Total number of exports by format",
		}, []string{"formato"}),

		ReservasEnCache: factory.NewGauge(prometheus.GaugeOpts{
			Name: "jungla_reservas_en_cache",
			Help: "Number of reservations in the current snapshot",
		}),
	}
}
