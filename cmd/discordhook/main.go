package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/aleister1102/discordhook"
	"github.com/aleister1102/discordhook/logging"
)

const webhookURLEnv = "DISCORD_WEBHOOK_URL"

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	flags := ParseFlags()

	if flags.EnvFile != "" {
		if err := godotenv.Load(flags.EnvFile); err != nil {
			fmt.Fprintf(os.Stderr, "[FATAL] Failed to load env file '%s': %v\n", flags.EnvFile, err)
			os.Exit(1)
		}
	} else {
		// A .env in the working directory is optional.
		_ = godotenv.Load()
	}

	logger, err := logging.NewBuilder().
		WithLevel(logging.ParseLevel(flags.LogLevel)).
		WithFile(flags.LogFile).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] Failed to build logger: %v\n", err)
		os.Exit(1)
	}

	cfg, err := buildConfig(flags)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	webhook, err := discordhook.NewFromConfig(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to build webhook client")
	}

	if flags.FilePath != "" {
		if err := webhook.AddFileFromPath(flags.FilePath); err != nil {
			logger.Fatal().Err(err).Str("file", flags.FilePath).Msg("Failed to attach file")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	results, err := webhook.Execute(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to send webhook message")
	}

	failed := 0
	for _, result := range results {
		if result.Err != nil {
			failed++
			logger.Error().Err(result.Err).Str("url", result.URL).Msg("Send failed")
			continue
		}
		logger.Info().
			Str("url", result.URL).
			Str("message_id", result.Handle.MessageID).
			Msg("Message sent")
	}

	if failed == len(results) {
		os.Exit(1)
	}
}

// buildConfig assembles the webhook configuration from the config file, the
// environment and flag overrides, in ascending priority.
func buildConfig(flags AppFlags) (*discordhook.Config, error) {
	var cfg *discordhook.Config

	if flags.ConfigFile != "" {
		loaded, err := discordhook.LoadConfig(flags.ConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg = discordhook.NewDefaultConfig()
	}

	if flags.URL != "" {
		cfg.URLs = []string{flags.URL}
	}
	if len(cfg.URLs) == 0 {
		if envURL := os.Getenv(webhookURLEnv); envURL != "" {
			cfg.URLs = []string{envURL}
		}
	}
	if len(cfg.URLs) == 0 {
		return nil, fmt.Errorf("no webhook URL: pass -url, set %s or list urls in a config file", webhookURLEnv)
	}

	if flags.Content != "" {
		cfg.Content = flags.Content
	}
	if flags.Username != "" {
		cfg.Username = flags.Username
	}
	if flags.Retry {
		cfg.RateLimitRetry = true
	}

	return cfg, nil
}
