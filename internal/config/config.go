package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	DBDSN      string
	MediaDir   string
	MediaBase  string
	LogFile    string
	GCSBucket  string // when set, variant images go to GCS instead of disk
	CORSOrigin string
}

func Load() Config {
	// Best-effort .env, same habit as the original deployment.
	_ = godotenv.Load()

	cfg := Config{
		Port:       getenv("PORT", "8081"),
		DBDSN:      getenv("DB_DSN", "hemline.db"),
		MediaDir:   getenv("MEDIA_DIR", "./media"),
		MediaBase:  getenv("MEDIA_BASE_URL", "http://localhost:8081/media"),
		LogFile:    getenv("LOG_FILE", ""),
		GCSBucket:  getenv("GCS_BUCKET", ""),
		CORSOrigin: getenv("CORS_ORIGIN", "*"),
	}
	log.Printf("[config] PORT=%s DB_DSN=%s MEDIA_DIR=%s GCS_BUCKET=%s", cfg.Port, cfg.DBDSN, cfg.MediaDir, cfg.GCSBucket)
	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
