package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

var (
	JwtSecret  string
	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	DbSSLMode  string
	ServerPort string
	Issuer     string

	FrontendURL    string
	AllowedOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string

	GeminiAPIKey string
	GeminiModel  string

	ResendAPIKey string
	EmailFrom    string

	ApplyLimitPerIP      = 10
	ApplyLimitPerProject = 100
	ApplyLimitWindow     = time.Hour
	MaxCVSize            int64 = 5 * 1024 * 1024

	ScoringWorkers      = 2
	ScoringPollInterval = 10 * time.Second
	AuditRetentionDays  = 30
)

// FileConfig is the optional YAML overlay read from CONFIG_FILE.
type FileConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
	RateLimit      struct {
		PerIP      int `yaml:"per_ip"`
		PerProject int `yaml:"per_project"`
	} `yaml:"rate_limit"`
	Scoring struct {
		Workers int `yaml:"workers"`
	} `yaml:"scoring"`
	AuditRetentionDays int `yaml:"audit_retention_days"`
}

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// SUPABASE_JWT_SECRET is what the hosted auth provider calls it.
	JwtSecret = getEnv("JWT_SECRET", getEnv("SUPABASE_JWT_SECRET", "defaultsecret"))
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "hris")
	DbSSLMode = getEnv("DB_SSLMODE", "disable")
	ServerPort = getEnv("SERVER_PORT", "8000")
	Issuer = getEnv("Issuer", "")

	FrontendURL = getEnv("FRONTEND_URL", "https://hris-cloud.vercel.app")
	if FrontendURL != "" {
		AllowedOrigins = append(AllowedOrigins, FrontendURL)
	}

	MinioEndpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minioadmin")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minioadmin")
	MinioBucket = getEnv("MINIO_BUCKET", "hris")
	MinioUseSSL, _ = strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))

	GeminiAPIKey = getEnv("GEMINI_API_KEY", "")
	GeminiModel = getEnv("GEMINI_MODEL", "gemini-2.5-flash")

	ResendAPIKey = getEnv("RESEND_API_KEY", "")
	EmailFrom = getEnv("EMAIL_FROM", "Acme HR <onboarding@resend.dev>")

	ScoringWorkers = getEnvInt("SCORING_WORKERS", ScoringWorkers)

	if path := getEnv("CONFIG_FILE", ""); path != "" {
		if err := loadFile(path); err != nil {
			log.Printf("Failed to load %s: %v", path, err)
		}
	}
}

func loadFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var fc FileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return err
	}
	applyFile(fc)
	return nil
}

func applyFile(fc FileConfig) {
	for _, o := range fc.AllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			AllowedOrigins = append(AllowedOrigins, o)
		}
	}
	if fc.RateLimit.PerIP > 0 {
		ApplyLimitPerIP = fc.RateLimit.PerIP
	}
	if fc.RateLimit.PerProject > 0 {
		ApplyLimitPerProject = fc.RateLimit.PerProject
	}
	if fc.Scoring.Workers > 0 {
		ScoringWorkers = fc.Scoring.Workers
	}
	if fc.AuditRetentionDays > 0 {
		AuditRetentionDays = fc.AuditRetentionDays
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
