package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Backends soportados para el almacén de reservas
const (
	BackendSupabase = "supabase"
	BackendPostgres = "postgres"
)

// Config contiene la configuración del servidor leída del entorno
type Config struct {
	ServerPort string

	// Almacén de reservas
	StoreBackend    string
	SupabaseURL     string
	SupabaseAnonKey string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string

	// SMTP (opcional: sin host no se envían emails)
	SMTPHost      string
	SMTPPort      string
	SMTPUser      string
	SMTPPassword  string
	SMTPFromName  string
	SMTPFromEmail string

	// S3 (opcional: sin bucket no se archivan exports)
	S3Region string
	S3Bucket string

	// Observabilidad y refresco
	MetricsPort     string
	RefreshInterval time.Duration
}

// LoadConfig carga la configuración desde variables de entorno, leyendo
// antes un .env si existe
func LoadConfig() (*Config, error) {
	// El .env es opcional; en despliegue las variables vienen del entorno
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		StoreBackend:    getEnv("STORE_BACKEND", BackendSupabase),
		SupabaseURL:     os.Getenv("SUPABASE_URL"),
		SupabaseAnonKey: os.Getenv("SUPABASE_ANON_KEY"),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBUser:          os.Getenv("DB_USER"),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		DBName:          os.Getenv("DB_NAME"),
		SMTPHost:        os.Getenv("SMTP_HOST"),
		SMTPPort:        getEnv("SMTP_PORT", "587"),
		SMTPUser:        os.Getenv("SMTP_USER"),
		SMTPPassword:    os.Getenv("SMTP_PASSWORD"),
		SMTPFromName:    getEnv("SMTP_FROM_NAME", "La Jungla Park"),
		SMTPFromEmail:   os.Getenv("SMTP_FROM_EMAIL"),
		S3Region:        getEnv("S3_REGION", "eu-west-1"),
		S3Bucket:        os.Getenv("S3_BUCKET_NAME"),
		MetricsPort:     os.Getenv("METRICS_PORT"),
	}

	intervalo := getEnv("REFRESH_INTERVAL", "5m")
	d, err := time.ParseDuration(intervalo)
	if err != nil {
		return nil, fmt.Errorf("REFRESH_INTERVAL inválido %q: %w", intervalo, err)
	}
	cfg.RefreshInterval = d

	switch cfg.StoreBackend {
	case BackendSupabase:
		if cfg.SupabaseURL == "" || cfg.SupabaseAnonKey == "" {
			return nil, fmt.Errorf("faltan las variables de entorno de Supabase (SUPABASE_URL, SUPABASE_ANON_KEY)")
		}
	case BackendPostgres:
		if cfg.DBUser == "" || cfg.DBName == "" {
			return nil, fmt.Errorf("faltan las variables de entorno de la base de datos (DB_USER, DB_NAME)")
		}
	default:
		return nil, fmt.Errorf("STORE_BACKEND desconocido: %q", cfg.StoreBackend)
	}

	return cfg, nil
}

// GetDBConnString devuelve la cadena de conexión a Postgres
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}

// EmailConfigurado indica si hay credenciales SMTP suficientes
func (c *Config) EmailConfigurado() bool {
	return c.SMTPHost != "" && c.SMTPFromEmail != ""
}

func getEnv(clave, porDefecto string) string {
	if valor := os.Getenv(clave); valor != "" {
		return valor
	}
	return porDefecto
}
