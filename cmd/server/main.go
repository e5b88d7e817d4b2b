package main

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cvidaal/jungla-admin/internal/application"
	"github.com/cvidaal/jungla-admin/internal/config"
	"github.com/cvidaal/jungla-admin/internal/domain"
	"github.com/cvidaal/jungla-admin/internal/email"
	"github.com/cvidaal/jungla-admin/internal/infrastructure/repository"
	"github.com/cvidaal/jungla-admin/internal/infrastructure/supabase"
	handlers "github.com/cvidaal/jungla-admin/internal/interfaces/http"
	"github.com/cvidaal/jungla-admin/internal/metrics"
	"github.com/cvidaal/jungla-admin/internal/scheduler"
	services "github.com/cvidaal/jungla-admin/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Almacén de reservas: cliente REST de Supabase o Postgres directo
	var store domain.ReservaStore
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		db, err := sql.Open("postgres", cfg.GetDBConnString())
		if err != nil {
			log.Fatalf("Error connecting to database: %v", err)
		}
		defer db.Close()

		if err := db.Ping(); err != nil {
			log.Fatalf("Error pinging database: %v", err)
		}

		store = repository.NewReservaRepository(db)
	default:
		store = supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseAnonKey)
	}

	// Email Client
	var emailClient *email.Client
	if cfg.EmailConfigurado() {
		emailClient, err = email.NewClient(
			cfg.SMTPHost,
			cfg.SMTPPort,
			cfg.SMTPUser,
			cfg.SMTPPassword,
			cfg.SMTPFromName,
			cfg.SMTPFromEmail,
		)
		if err != nil {
			log.Printf("Warning: Email client initialization failed: %v", err)
			emailClient = nil // Continuar sin email
		}
	}

	// S3 para archivado de exports
	var s3Service *services.S3Service
	if cfg.S3Bucket != "" {
		s3Service, err = services.NewS3Service(cfg.S3Region, cfg.S3Bucket)
		if err != nil {
			log.Printf("Warning: S3 service initialization failed: %v", err)
			s3Service = nil // Continuar sin archivado
		}
	}

	m := metrics.New(prometheus.DefaultRegisterer)

	// Reservas
	reservaService := application.NewReservaService(store, emailClient, m)
	reservaHandler := handlers.NewReservaHandler(reservaService)
	dashboardHandler := handlers.NewDashboardHandler(reservaService)
	exportHandler := handlers.NewExportHandler(reservaService, s3Service)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:3000",
		AllowMethods:     "GET,POST,PATCH,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		AllowCredentials: true,
		ExposeHeaders:    "Content-Length,Content-Disposition",
		MaxAge:           86400,
	}))

	api := app.Group("/api")

	// Rutas de reservas
	reservas := api.Group("/reservas")
	reservas.Get("/", reservaHandler.ListarReservas)
	reservas.Get("/export", exportHandler.Exportar)
	reservas.Post("/export/archivar", exportHandler.Archivar)
	reservas.Post("/refrescar", reservaHandler.Refrescar)
	reservas.Get("/:id", reservaHandler.GetReserva)
	reservas.Patch("/:id/estado", reservaHandler.UpdateEstado)
	reservas.Post("/:id/confirmar", reservaHandler.Confirmar)
	reservas.Post("/:id/completar", reservaHandler.Completar)
	reservas.Post("/:id/cancelar", reservaHandler.Cancelar)

	// Rutas del dashboard
	dashboard := api.Group("/dashboard")
	dashboard.Get("/stats", dashboardHandler.GetStats)

	// Rutas del calendario
	calendario := api.Group("/calendario")
	calendario.Get("/", dashboardHandler.GetCalendario)
	calendario.Get("/:fecha", dashboardHandler.GetDia)

	// Métricas Prometheus en su propio listener
	if cfg.MetricsPort != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			log.Printf("Metrics listening on port %s", cfg.MetricsPort)
			if err := http.ListenAndServe(":"+cfg.MetricsPort, mux); err != nil {
				log.Printf("Error starting metrics server: %v", err)
			}
		}()
	}

	// Refresco periódico del snapshot
	if cfg.RefreshInterval > 0 {
		refreshScheduler := scheduler.NewRefreshScheduler(reservaService, cfg.RefreshInterval)
		refreshScheduler.Start()
		defer refreshScheduler.Stop()
	}

	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
