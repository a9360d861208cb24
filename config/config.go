package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config enthält alle Konfigurationsparameter aus Umgebungsvariablen.
type Config struct {
	HTTPPort string `envconfig:"HTTP_PORT" default:"3000"`
	AppEnv   string `envconfig:"APP_ENV" default:"development"`

	// Waitlist-Persistenz: "file" (JSON unter DATA_DIR) oder "postgres"
	WaitlistBackend string `envconfig:"WAITLIST_BACKEND" default:"file"`
	DataDir         string `envconfig:"DATA_DIR" default:"data"`
	WaitlistFile    string `envconfig:"WAITLIST_FILE" default:"waitlist.json"`

	DBHost     string `envconfig:"DB_HOST"`
	DBPort     int    `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME"`

	// Optionaler Schlüssel für GET /api/waitlist (leer = offen)
	APISecretKey string `envconfig:"API_SECRET_KEY"`

	// Künstliche Latenz für die Demo-Routen
	ProductDelay time.Duration `envconfig:"PRODUCT_DELAY" default:"0s"`
	ScanDelay    time.Duration `envconfig:"SCAN_DELAY" default:"0s"`

	ScanUploadsEnabled bool `envconfig:"SCAN_UPLOADS_ENABLED" default:"false"`

	// S3-kompatibler Objektspeicher (Scan-Uploads, Waitlist-Backups)
	S3Endpoint string `envconfig:"S3_ENDPOINT"`
	S3Region   string `envconfig:"S3_REGION"`
	S3Key      string `envconfig:"S3_KEY"`
	S3Secret   string `envconfig:"S3_SECRET"`
	S3Bucket   string `envconfig:"S3_BUCKET"`

	BackupCron string `envconfig:"BACKUP_CRON"`
	BackupKeep int    `envconfig:"BACKUP_KEEP" default:"7"`

	CORSOrigins string `envconfig:"CORS_ORIGINS" default:"http://localhost:3000"`

	// Signups pro Sekunde für POST /api/waitlist (0 = aus)
	WaitlistRateLimit float64 `envconfig:"WAITLIST_RATE_LIMIT" default:"0"`
	WaitlistRateBurst int     `envconfig:"WAITLIST_RATE_BURST" default:"10"`

	// Katalog-Prüfung (cmd/catalogue-check)
	EuropePMCBaseURL string `envconfig:"EUROPEPMC_BASE_URL" default:"https://www.ebi.ac.uk/europepmc/webservices/rest"`
	UnpaywallBaseURL string `envconfig:"UNPAYWALL_BASE_URL" default:"https://api.unpaywall.org/v2"`
	UnpaywallEmail   string `envconfig:"UNPAYWALL_EMAIL"`
}

// DSN gibt den Data Source Name für die PostgreSQL-Verbindung zurück.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

// IsProduction steuert, ob Fehlerdetails in 500-Antworten ausgeliefert werden.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

// WaitlistPath ist der vollständige Pfad der Waitlist-Datei.
func (c *Config) WaitlistPath() string {
	return filepath.Join(c.DataDir, c.WaitlistFile)
}

// S3Enabled meldet, ob genug S3-Parameter gesetzt sind, um einen Client zu bauen.
func (c *Config) S3Enabled() bool {
	return c.S3Endpoint != "" && c.S3Bucket != "" && c.S3Key != "" && c.S3Secret != ""
}

// AllowedOrigins zerlegt CORS_ORIGINS in einzelne Origins.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// Validate prüft Kombinationen, die envconfig allein nicht abdeckt.
func (c *Config) Validate() error {
	switch c.WaitlistBackend {
	case "file":
	case "postgres":
		if c.DBHost == "" || c.DBUser == "" || c.DBName == "" {
			return fmt.Errorf("WAITLIST_BACKEND=postgres requires DB_HOST, DB_USER and DB_NAME")
		}
	default:
		return fmt.Errorf("unknown WAITLIST_BACKEND %q", c.WaitlistBackend)
	}
	if c.ScanUploadsEnabled && !c.S3Enabled() {
		return fmt.Errorf("SCAN_UPLOADS_ENABLED requires S3_ENDPOINT, S3_BUCKET, S3_KEY and S3_SECRET")
	}
	if c.BackupCron != "" && !c.S3Enabled() {
		return fmt.Errorf("BACKUP_CRON requires S3 settings")
	}
	return nil
}

// Load lädt die Konfiguration aus den Umgebungsvariablen.
func Load() (*Config, error) {
	_ = godotenv.Load()
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}
