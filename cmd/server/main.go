package main

import (
	"log"
	"os"

	"hexconv-service/internal/app"
	"hexconv-service/internal/config"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"
)

var cli struct {
	EnvFile  []string `help:"Env files to load before reading the environment." default:".env"`
	Host     string   `help:"Listen host (overrides HOST)."`
	Port     string   `help:"Listen port (overrides PORT)."`
	Mode     string   `help:"Gin mode (overrides GIN_MODE)."`
	LogLevel string   `help:"Log level (overrides LOG_LEVEL)."`
}

func main() {
	kong.Parse(&cli,
		kong.Name("hexconv-server"),
		kong.Description("Greeting page and decimal/hex conversion service."),
	)

	cfg, err := config.Load(cli.EnvFile...)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cli.Host != "" {
		cfg.Server.Host = cli.Host
	}
	if cli.Port != "" {
		cfg.Server.Port = cli.Port
	}
	if cli.Mode != "" {
		cfg.Server.Mode = cli.Mode
	}
	if cli.LogLevel != "" {
		cfg.Logging.Level = cli.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := app.NewLogger(&cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	application, err := app.New(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize application", zap.Error(err))
	}

	logger.Info("Starting hexconv service",
		zap.String("url", "http://"+cfg.Server.Addr()),
	)
	if err := application.Run(); err != nil {
		logger.Error("Server failed", zap.Error(err))
		os.Exit(1)
	}
}
