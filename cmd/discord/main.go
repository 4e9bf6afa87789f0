package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"hatysa/internal/command"
	"hatysa/internal/config"
	"hatysa/internal/discord"
	"hatysa/internal/storage"
	"hatysa/internal/version"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	level, err := zerolog.ParseLevel(cfg.LogFilter)
	if err != nil {
		log.Warn().Str("filter", cfg.LogFilter).Msg("unknown log filter, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	startTime := time.Now()
	log.Info().Str("version", version.Version).Str("prefix", cfg.Prefix).Msg("starting hatysa")

	store, err := storage.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DatabasePath).Msg("failed to open storage")
	}
	defer store.Close()

	// Commands with dependencies are registered here; pure commands register
	// themselves in init().
	command.Register(command.NewInfo(startTime))
	command.Register(command.NewZalgo(time.Now().UnixNano()))
	command.Register(command.NewSketchify(&http.Client{Timeout: 10 * time.Second}))
	command.Register(command.NewKarma(store))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bot := discord.NewBot(cfg, store, log.With().Str("component", "discord").Logger())

	errCh := make(chan error, 1)
	go func() {
		if err := bot.Run(ctx); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Info().Str("signal", s.String()).Msg("shutting down")
		cancel()
		<-errCh
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("bot exited with error")
		}
		cancel()
	}

	log.Info().Msg("bot exited cleanly")
}
