// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"os"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/ledger-recon/engine/internal/domain/valueobject"
)

// Config holds all application configuration.
type Config struct {
	Matching MatchingConfig
	Log      LogConfig
}

// MatchingConfig holds the tunables for the reconciliation engine.
type MatchingConfig struct {
	AmountToleranceAbsolute float64
	AmountTolerancePercent  float64
	DateToleranceDays       int
	DescriptionWeight       float64
	AmountWeight            float64
	DateWeight              float64
	AcceptanceThreshold     float64
	SuggestionThreshold     float64
	SuggestionTopK          int
}

// LogConfig holds structured logging configuration.
type LogConfig struct {
	Level string
}

// Load loads configuration from environment variables.
func Load() *Config {
	defaults := valueobject.DefaultMatchConfig()

	return &Config{
		Matching: MatchingConfig{
			AmountToleranceAbsolute: getEnvAsFloat("RECON_AMOUNT_TOLERANCE", mustFloat(defaults.AmountToleranceAbsolute)),
			AmountTolerancePercent:  getEnvAsFloat("RECON_AMOUNT_TOLERANCE_PCT", mustFloat(defaults.AmountTolerancePercent)),
			DateToleranceDays:       getEnvAsInt("RECON_DATE_TOLERANCE_DAYS", defaults.DateToleranceDays),
			DescriptionWeight:       getEnvAsFloat("RECON_DESCRIPTION_WEIGHT", defaults.DescriptionWeight),
			AmountWeight:            getEnvAsFloat("RECON_AMOUNT_WEIGHT", defaults.AmountWeight),
			DateWeight:              getEnvAsFloat("RECON_DATE_WEIGHT", defaults.DateWeight),
			AcceptanceThreshold:     getEnvAsFloat("RECON_ACCEPTANCE_THRESHOLD", defaults.AcceptanceThreshold),
			SuggestionThreshold:     getEnvAsFloat("RECON_SUGGESTION_THRESHOLD", defaults.SuggestionThreshold),
			SuggestionTopK:          getEnvAsInt("RECON_SUGGESTION_TOP_K", defaults.SuggestionTopK),
		},
		Log: LogConfig{
			Level: getEnv("RECON_LOG_LEVEL", "info"),
		},
	}
}

// ToMatchConfig converts the loaded values into the engine's value object.
// Validation happens at use case construction, not here.
func (c MatchingConfig) ToMatchConfig() valueobject.MatchConfig {
	return valueobject.MatchConfig{
		AmountToleranceAbsolute: decimal.NewFromFloat(c.AmountToleranceAbsolute),
		AmountTolerancePercent:  decimal.NewFromFloat(c.AmountTolerancePercent),
		DateToleranceDays:       c.DateToleranceDays,
		DescriptionWeight:       c.DescriptionWeight,
		AmountWeight:            c.AmountWeight,
		DateWeight:              c.DateWeight,
		AcceptanceThreshold:     c.AcceptanceThreshold,
		SuggestionThreshold:     c.SuggestionThreshold,
		SuggestionTopK:          c.SuggestionTopK,
	}
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func mustFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
