package config

import "strings"

type HTTPConfig struct {
	Port            string
	AllowedOrigins  []string
	ShutdownTimeout int // секунд
}

func LoadHTTPConfig() *HTTPConfig {
	origins := strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:3000"), ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	return &HTTPConfig{
		Port:            getEnv("API_PORT", "8080"),
		AllowedOrigins:  origins,
		ShutdownTimeout: getEnvInt("SHUTDOWN_TIMEOUT_SEC", 10),
	}
}
