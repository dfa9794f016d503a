package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App           App
	Log           Log
	DealsAPI      DealsAPI
	Watch         Watch
	Bot           Bot
	Observability Observability
	CLI           CLI
}

type App struct {
	Name    string `env:"APP_NAME" envDefault:"deal-feed"`
	Version string `env:"APP_VERSION" envDefault:"dev"`
	// UserID пользователь для "моих сделок".
	UserID string `env:"DEALS_USER_ID"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	Format string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
}

// Load читает .env (если есть), окружение и флаги командной строки.
// Значения из окружения приоритетнее флагов.
func Load(args []string) (Config, error) {
	_ = godotenv.Load()

	return load(args, env.Options{})
}

func load(args []string, opts env.Options) (Config, error) {
	var config Config

	if err := env.ParseWithOptions(&config, opts); err != nil {
		return Config{}, fmt.Errorf("env.ParseWithOptions: %w", err)
	}

	if err := config.parseFlags(args); err != nil {
		return Config{}, fmt.Errorf("config.parseFlags: %w", err)
	}

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(config); err != nil {
		return Config{}, fmt.Errorf("validator.Struct: %w", err)
	}

	return config, nil
}
