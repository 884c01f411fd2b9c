package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Default weekdays for the three mandatory sessions (0 = Sunday).
	WelcomeDay int `mapstructure:"WELCOME_DAY"`
	OnboardDay int `mapstructure:"ONBOARD_DAY"`
	ElevateDay int `mapstructure:"ELEVATE_DAY"`

	// Latest permissible shift start, as an hour of day.
	ShiftCutoffHour int `mapstructure:"SHIFT_CUTOFF_HOUR"`

	// Iteration ceilings for the roster builder.
	MaxRounds        int `mapstructure:"MAX_ROUNDS"`
	MaxDateRetries   int `mapstructure:"MAX_DATE_RETRIES"`
	MaxFallbackSteps int `mapstructure:"MAX_FALLBACK_STEPS"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("WELCOME_DAY", 2)
	viper.SetDefault("ONBOARD_DAY", 4)
	viper.SetDefault("ELEVATE_DAY", 3)
	viper.SetDefault("SHIFT_CUTOFF_HOUR", 19)
	viper.SetDefault("MAX_ROUNDS", 5000)
	viper.SetDefault("MAX_DATE_RETRIES", 100)
	viper.SetDefault("MAX_FALLBACK_STEPS", 5000)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
