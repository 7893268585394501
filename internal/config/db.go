package config

import (
	"fmt"
	"os"
	"strconv"
)

// Параметры подключения к Postgres. Значения по умолчанию совпадают
// с docker-compose окружением клиники.
type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	// Таймзона сессии Postgres; для клиники это Europe/Rome.
	TimeZone string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifeTime int // минуты
}

func LoadDBConfig() (*DBConfig, error) {
	cfg := &DBConfig{
		Host:            getEnv("DB_HOST", "postgres"),
		Port:            getEnvInt("DB_PORT", 5432),
		User:            getEnv("DB_USER", "clinic"),
		Password:        getEnv("DB_PASSWORD", "clinic"),
		Name:            getEnv("DB_NAME", "clinic_db"),
		SSLMode:         getEnv("DB_SSLMODE", "disable"),
		TimeZone:        getEnv("DB_TIMEZONE", "Europe/Rome"),
		MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 10),
		MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifeTime: getEnvInt("DB_CONN_MAX_LIFETIME_MIN", 30),
	}

	if cfg.Host == "" || cfg.User == "" || cfg.Name == "" {
		return nil, fmt.Errorf("db config: host, user and name must not be empty")
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
