package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server          ServerConfig      `toml:"server"`
	Database        DatabaseConfig    `toml:"database"`
	Logs            LogsConfig        `toml:"logs"`
	Metrics         MetricsConfig     `toml:"metrics"`
	IdentityService IntegrationConfig `toml:"identity_service"`
	CatalogService  IntegrationConfig `toml:"catalog_service"`
	Salon           SalonConfig       `toml:"salon"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки прометеус-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// IntegrationConfig настройки клиента внешнего сервиса
type IntegrationConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// SalonConfig расписание салона: дневная сетка слотов и выходной день
// Сетка фиксированная: слоты с open_time до close_time с шагом slot_duration_minutes
type SalonConfig struct {
	OpenTime            string `toml:"open_time"`             // "09:00"
	CloseTime           string `toml:"close_time"`            // "19:00"
	SlotDurationMinutes int    `toml:"slot_duration_minutes"` // 60
	ClosedWeekday       int    `toml:"closed_weekday"`        // 0 = Sunday
}

// Load загружает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate проверяет обязательные поля конфигурации
func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("config: database.host and database.dbname are required")
	}
	if c.IdentityService.URL == "" {
		return fmt.Errorf("config: identity_service.url is required")
	}
	if c.CatalogService.URL == "" {
		return fmt.Errorf("config: catalog_service.url is required")
	}
	if c.Salon.SlotDurationMinutes <= 0 {
		return fmt.Errorf("config: salon.slot_duration_minutes must be positive")
	}
	if c.Salon.ClosedWeekday < 0 || c.Salon.ClosedWeekday > 6 {
		return fmt.Errorf("config: salon.closed_weekday must be in [0..6]")
	}
	return nil
}
