package config

import (
	"os"
	"strconv"

	"imageresize/internal/pipeline"
)

// Config holds encoder settings and input limits read from the environment.
type Config struct {
	JPEGQuality   int
	WebPQuality   int
	AVIFQuality   int
	AVIFSpeed     int
	MaxInputBytes int64
	MaxDimension  int
}

// Load reads IMAGERESIZE_* variables, falling back to defaults.
func Load() *Config {
	return &Config{
		JPEGQuality:   getEnvInt("IMAGERESIZE_JPEG_QUALITY", pipeline.DefaultJPEGQuality),
		WebPQuality:   getEnvInt("IMAGERESIZE_WEBP_QUALITY", pipeline.DefaultWebPQuality),
		AVIFQuality:   getEnvInt("IMAGERESIZE_AVIF_QUALITY", pipeline.DefaultAVIFQuality),
		AVIFSpeed:     getEnvInt("IMAGERESIZE_AVIF_SPEED", pipeline.DefaultAVIFSpeed),
		MaxInputBytes: int64(getEnvInt("IMAGERESIZE_MAX_INPUT_BYTES", pipeline.DefaultMaxInputBytes)),
		MaxDimension:  getEnvInt("IMAGERESIZE_MAX_DIMENSION", pipeline.DefaultMaxDimension),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt falls back to defaultValue when the variable is unset, not a
// number, or not positive.
func getEnvInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(getEnv(key, ""))
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}
