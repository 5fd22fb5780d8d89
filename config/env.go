package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds runtime settings read from the environment.
type Config struct {
	Port          string
	FontsDir      string
	DefaultFont   string
	OutputDir     string
	InputDir      string
	KafkaBrokers  []string
	KafkaTopic    string
	KafkaGroupID  string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	S3Bucket      string
	S3Prefix      string
	S3Region      string
	S3Profile     string
	S3PathStyle   bool
}

// Load reads .env if present (non-fatal if missing) and then the process environment.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:          GetEnvOrDefault("PORT", "8081"),
		FontsDir:      GetEnvOrDefault("FONTS_DIR", FontsDir),
		DefaultFont:   GetEnvOrDefault("DEFAULT_FONT", DefaultFontID),
		OutputDir:     GetEnvOrDefault("OUTPUT_DIR", OutputDir),
		InputDir:      GetEnvOrDefault("INPUT_DIR", InputDir),
		KafkaBrokers:  splitList(GetEnvOrDefault("KAFKA_BOOTSTRAP_SERVERS", "localhost:9093")),
		KafkaTopic:    GetEnvOrDefault("KAFKA_TOPIC_RENDER_REQUESTS", "overlay-render-requests"),
		KafkaGroupID:  GetEnvOrDefault("KAFKA_CONSUMER_GROUP_ID", "overlay-render-consumer-group"),
		RedisAddr:     strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		RedisPassword: os.Getenv("REDIS_PASS"),
		S3Bucket:      strings.TrimSpace(os.Getenv("S3_BUCKET")),
		S3Region:      strings.TrimSpace(os.Getenv("S3_REGION")),
		S3Profile:     strings.TrimSpace(os.Getenv("S3_PROFILE")),
		S3PathStyle:   strings.EqualFold(strings.TrimSpace(os.Getenv("S3_USE_PATH_STYLE")), "true"),
	}

	if v := os.Getenv("REDIS_DB"); v != "" {
		if db, err := strconv.Atoi(v); err == nil && db >= 0 {
			cfg.RedisDB = db
		}
	}

	if prefix := strings.TrimSpace(os.Getenv("S3_PREFIX")); prefix != "" {
		cfg.S3Prefix = strings.Trim(prefix, "/") + "/"
	}

	if !strings.HasPrefix(cfg.Port, ":") {
		cfg.Port = ":" + cfg.Port
	}
	return cfg
}

// GetEnvOrDefault returns the trimmed value of key, or def when unset or blank.
func GetEnvOrDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
