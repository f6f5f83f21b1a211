package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

var (
	// ErrReadConfig ошибка чтения/декодирования файла конфигурации
	ErrReadConfig = errors.New("config: failed to read config")

	// ErrLoadEnv ошибка загрузки .env
	ErrLoadEnv = errors.New("config: failed to load .env")

	// ErrValidation конфигурация не прошла валидацию
	ErrValidation = errors.New("config: validation failed")
)

// Config конфигурация сервиса
type Config struct {
	Server         ServerConfig       `toml:"server"`
	Database       DatabaseConfig     `toml:"database"`
	Redis          RedisConfig        `toml:"redis"`
	Logs           LogsConfig         `toml:"logs"`
	Metrics        MetricsConfig      `toml:"metrics"`
	Tracing        TracingConfig      `toml:"tracing"`
	CatalogService IntegrationConfig  `toml:"catalog_service"`
	StatsService   IntegrationConfig  `toml:"stats_service"`
	Availability   AvailabilityConfig `toml:"availability"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port" validate:"required,min=1,max=65535"`
	ReadTimeout     int `toml:"read_timeout" validate:"min=0"`
	WriteTimeout    int `toml:"write_timeout" validate:"min=0"`
	IdleTimeout     int `toml:"idle_timeout" validate:"min=0"`
	ShutdownTimeout int `toml:"shutdown_timeout" validate:"min=0"`
}

type DatabaseConfig struct {
	Host            string `toml:"host" validate:"required"`
	Port            int    `toml:"port" validate:"required,min=1,max=65535"`
	User            string `toml:"user" validate:"required"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname" validate:"required"`
	SSLMode         string `toml:"sslmode" validate:"omitempty,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int    `toml:"max_open_conns" validate:"min=0"`
	MaxIdleConns    int    `toml:"max_idle_conns" validate:"min=0"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" validate:"min=0"` // секунды
}

// DSN строка подключения к PostgreSQL для lib/pq
func (d DatabaseConfig) DSN() string {
	sslMode := d.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, sslMode)
}

type RedisConfig struct {
	Enabled         bool   `toml:"enabled"`
	Addr            string `toml:"addr" validate:"required_if=Enabled true"`
	Password        string `toml:"password"`
	DB              int    `toml:"db" validate:"min=0"`
	OccupancyTTLSec int    `toml:"occupancy_ttl" validate:"min=0"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level" validate:"omitempty,oneof=debug info warn error"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path" validate:"required_if=Enabled true"`
	ServiceName string `toml:"service_name" validate:"required_if=Enabled true"`
}

type TracingConfig struct {
	Enabled      bool    `toml:"enabled"`
	ServiceName  string  `toml:"service_name"`
	OTLPEndpoint string  `toml:"otlp_endpoint" validate:"required_if=Enabled true"`
	SampleRatio  float64 `toml:"sample_ratio" validate:"min=0,max=1"`
}

// IntegrationConfig настройки HTTP-клиента внешнего сервиса
type IntegrationConfig struct {
	URL     string `toml:"url" validate:"required,url"`
	Timeout int    `toml:"timeout" validate:"min=1"` // секунды
}

// AvailabilityConfig параметры расчета доступности
type AvailabilityConfig struct {
	Timezone              string `toml:"timezone" validate:"required"`
	HorizonDays           int    `toml:"horizon_days" validate:"min=1,max=366"`
	StepMinutes           int    `toml:"step_minutes" validate:"min=5,max=240"`
	DefaultBookingMinutes int    `toml:"default_booking_minutes" validate:"min=1"`
	PeriodFilter          string `toml:"period_filter" validate:"oneof=rule_start slot_start"`
	AgendaStart           string `toml:"agenda_start" validate:"required"`
	AgendaEnd             string `toml:"agenda_end" validate:"required"`
}

// Location возвращает часовой пояс, в котором считаются "сегодня" и даты слотов
func (a AvailabilityConfig) Location() (*time.Location, error) {
	return time.LoadLocation(a.Timezone)
}

// AgendaBounds возвращает границы сетки агенды; начало строго раньше конца
func (a AvailabilityConfig) AgendaBounds() (types.TimeString, types.TimeString, error) {
	start, err := types.NewTimeStringFromString(a.AgendaStart)
	if err != nil {
		return "", "", fmt.Errorf("agenda_start: %w", err)
	}
	end, err := types.NewTimeStringFromString(a.AgendaEnd)
	if err != nil {
		return "", "", fmt.Errorf("agenda_end: %w", err)
	}
	if !start.IsBefore(end) {
		return "", "", fmt.Errorf("agenda_start %s must be before agenda_end %s", start, end)
	}
	return start, end, nil
}

// Load читает конфигурацию из toml-файла, накладывает переменные окружения
// (в том числе из .env, если он есть) и валидирует результат
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadEnv, err)
		}
	}
	applyEnv(cfg)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if _, err := cfg.Availability.Location(); err != nil {
		return nil, fmt.Errorf("%w: unknown timezone %q: %v", ErrValidation, cfg.Availability.Timezone, err)
	}

	if _, _, err := cfg.Availability.AgendaBounds(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Redis: RedisConfig{
			OccupancyTTLSec: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "availability-service",
		},
		Tracing: TracingConfig{
			ServiceName: "availability-service",
			SampleRatio: 1,
		},
		CatalogService: IntegrationConfig{Timeout: 5},
		StatsService:   IntegrationConfig{Timeout: 5},
		Availability: AvailabilityConfig{
			Timezone:              domain.DefaultTimezone,
			HorizonDays:           domain.DefaultHorizonDays,
			StepMinutes:           domain.DefaultStepMinutes,
			DefaultBookingMinutes: domain.DefaultBookingMinutes,
			PeriodFilter:          string(availability.PeriodFilterRuleStart),
			AgendaStart:           domain.DefaultAgendaStart,
			AgendaEnd:             domain.DefaultAgendaEnd,
		},
	}
}

// applyEnv переопределяет секреты и адреса переменными окружения
func applyEnv(cfg *Config) {
	setString(&cfg.Database.Host, "DB_HOST")
	setInt(&cfg.Database.Port, "DB_PORT")
	setString(&cfg.Database.User, "DB_USER")
	setString(&cfg.Database.Password, "DB_PASSWORD")
	setString(&cfg.Database.DBName, "DB_NAME")
	setString(&cfg.Redis.Addr, "REDIS_ADDR")
	setString(&cfg.Redis.Password, "REDIS_PASSWORD")
	setString(&cfg.CatalogService.URL, "CATALOG_SERVICE_URL")
	setString(&cfg.StatsService.URL, "STATS_SERVICE_URL")
	setString(&cfg.Tracing.OTLPEndpoint, "OTEL_EXPORTER_OTLP_ENDPOINT")
	setString(&cfg.Availability.Timezone, "AVAILABILITY_TIMEZONE")
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
