package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type LogConfig struct {
	Level  string
	Format string
}

// ReminderConfig tunes the upcoming-payments and monthly-review features.
type ReminderConfig struct {
	UpcomingDaysAhead int
	UrgentWithinDays  int
	WarningWithinDays int
	ReviewGraceDays   int
}

// TLSConfig enables TLS on the gRPC listener when both files are set.
type TLSConfig struct {
	CertFile string
	KeyFile  string
}

func (t TLSConfig) Enabled() bool {
	return t.CertFile != "" && t.KeyFile != ""
}

type Config struct {
	GRPCPort       int
	HTTPPort       int
	GRPCTLS        TLSConfig
	Log            LogConfig
	Reminders      ReminderConfig
	Timezone       string
	GRPCReflection bool
	ServiceName    string
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	if c.GRPCPort <= 0 || c.GRPCPort > 65535 {
		errs = append(errs, fmt.Errorf("GRPC_PORT %d out of range", c.GRPCPort))
	}
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		errs = append(errs, fmt.Errorf("HTTP_PORT %d out of range", c.HTTPPort))
	}
	if c.GRPCPort == c.HTTPPort {
		errs = append(errs, fmt.Errorf("GRPC_PORT and HTTP_PORT must differ (both %d)", c.GRPCPort))
	}
	r := c.Reminders
	if r.UpcomingDaysAhead < 0 || r.UrgentWithinDays < 0 || r.WarningWithinDays < 0 || r.ReviewGraceDays < 0 {
		errs = append(errs, errors.New("reminder day counts must not be negative"))
	}
	if r.UrgentWithinDays > r.WarningWithinDays {
		errs = append(errs, fmt.Errorf("URGENT_WITHIN_DAYS %d exceeds WARNING_WITHIN_DAYS %d",
			r.UrgentWithinDays, r.WarningWithinDays))
	}
	if (c.GRPCTLS.CertFile == "") != (c.GRPCTLS.KeyFile == "") {
		errs = append(errs, errors.New("GRPC_TLS_CERT_FILE and GRPC_TLS_KEY_FILE must be set together"))
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("TIMEZONE: %w", err))
	}
	return errors.Join(errs...)
}

func Load() Config {
	return Config{
		GRPCPort: getEnvInt("GRPC_PORT", 9091),
		HTTPPort: getEnvInt("HTTP_PORT", 8091),
		GRPCTLS: TLSConfig{
			CertFile: getEnv("GRPC_TLS_CERT_FILE", ""),
			KeyFile:  getEnv("GRPC_TLS_KEY_FILE", ""),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Reminders: ReminderConfig{
			UpcomingDaysAhead: getEnvInt("UPCOMING_DAYS_AHEAD", 7),
			UrgentWithinDays:  getEnvInt("URGENT_WITHIN_DAYS", 1),
			WarningWithinDays: getEnvInt("WARNING_WITHIN_DAYS", 3),
			ReviewGraceDays:   getEnvInt("REVIEW_GRACE_DAYS", 5),
		},
		Timezone:       getEnv("TIMEZONE", "UTC"),
		GRPCReflection: getEnvBool("GRPC_REFLECTION", false),
		ServiceName:    getEnv("SERVICE_NAME", "obligation-service"),
	}
}

// Location resolves Timezone. Call Validate first; an unknown zone falls
// back to UTC.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c Config) GRPCAddr() string {
	return fmt.Sprintf(":%d", c.GRPCPort)
}

func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
