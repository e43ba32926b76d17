package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Kiosk    KioskConfig
	Engine   EngineConfig
}

type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret                 string
	KioskSessionExpiration string
}

// KioskConfig holds shared-device authentication settings. DeviceKeyHash is a
// bcrypt hash of the key provisioned on the kiosk hardware.
type KioskConfig struct {
	DeviceKeyHash string
}

// EngineConfig holds the attendance engine tunables.
type EngineConfig struct {
	Timezone              string
	ToleranceMinutes      int
	FullShiftMinutes      int
	PunchTokenWindowSecs  int
	AntiReplaySeconds     int
	PollVisibilitySeconds int
}

func Load() (*Config, error) {
	// Missing .env is fine, env vars may come from the host.
	_ = godotenv.Load()

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "timeclock"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	config.JWT = JWTConfig{
		Secret:                 getEnv("JWT_SECRET_KEY", ""),
		KioskSessionExpiration: getEnv("JWT_KIOSK_SESSION_EXPIRATION_TIME", "12h"),
	}

	config.Kiosk = KioskConfig{
		DeviceKeyHash: getEnv("KIOSK_DEVICE_KEY_HASH", ""),
	}

	engine := EngineConfig{Timezone: getEnv("ENGINE_TIMEZONE", "America/Sao_Paulo")}
	for _, f := range []struct {
		dst      *int
		key      string
		fallback string
	}{
		{&engine.ToleranceMinutes, "ENGINE_TOLERANCE_MINUTES", "10"},
		{&engine.FullShiftMinutes, "ENGINE_FULL_SHIFT_MINUTES", "720"},
		{&engine.PunchTokenWindowSecs, "ENGINE_PUNCH_TOKEN_WINDOW_SECONDS", "30"},
		{&engine.AntiReplaySeconds, "ENGINE_ANTI_REPLAY_SECONDS", "60"},
		{&engine.PollVisibilitySeconds, "ENGINE_POLL_VISIBILITY_SECONDS", "15"},
	} {
		v, err := strconv.Atoi(getEnv(f.key, f.fallback))
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", f.key, err)
		}
		*f.dst = v
	}
	config.Engine = engine

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Kiosk.DeviceKeyHash == "" {
		return fmt.Errorf("KIOSK_DEVICE_KEY_HASH is required")
	}
	if c.Engine.ToleranceMinutes < 0 {
		return fmt.Errorf("ENGINE_TOLERANCE_MINUTES must not be negative")
	}
	if c.Engine.FullShiftMinutes <= 0 {
		return fmt.Errorf("ENGINE_FULL_SHIFT_MINUTES must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
