package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/go-telegram/bot"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rose1304003/Finlit-bot/config"
	"github.com/rose1304003/Finlit-bot/flow"
	"github.com/rose1304003/Finlit-bot/handler"
	"github.com/rose1304003/Finlit-bot/repo"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("error loading configuration")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := os.MkdirAll(filepath.Dir(cfg.ExcelPath), 0o755); err != nil {
		log.Fatal().Err(err).Msg("error creating data directory")
	}

	store, err := repo.Open(cfg.DBPath())
	if err != nil {
		log.Fatal().Err(err).Msg("error opening database")
	}
	defer store.Close()

	if err := store.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("error ensuring database schema")
	}

	exporter := repo.NewExporter(store, cfg.ExcelPath)
	h := handler.New(flow.New(cfg.Location), store, exporter, cfg.OrganizerIDs, cfg.LocalTZ, cfg.Location)

	b, err := bot.New(cfg.BotToken, bot.WithDefaultHandler(h.Handle))
	if err != nil {
		log.Fatal().Err(err).Msg("error creating bot")
	}

	log.Info().Ints64("organizers", cfg.OrganizerIDs).Str("tz", cfg.LocalTZ).Msg("Finlit registration bot started")
	b.Start(ctx)
	log.Info().Msg("bot stopped")
}
