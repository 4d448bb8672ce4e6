package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"cafe-julio/config"
	"cafe-julio/db"
	"cafe-julio/notify"
	"cafe-julio/services"
	"cafe-julio/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	if cfg.Session.Secret == "" {
		fmt.Fprintln(os.Stderr, "SESSION_SECRET not set")
		os.Exit(1)
	}

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "migrate":
			runMigrate(cfg)
			return
		case "seed":
			runSeed(cfg)
			return
		}
	}

	if err := db.Init(cfg.DB); err != nil {
		fmt.Fprintln(os.Stderr, "db:", err)
		os.Exit(1)
	}
	defer db.Close()

	// Optional auto-migration for fresh databases.
	// Set AUTO_MIGRATE=1 (or "true") to enable.
	if v := strings.TrimSpace(os.Getenv("AUTO_MIGRATE")); v == "1" || strings.EqualFold(v, "true") {
		if err := applyMigrations(context.Background(), false); err != nil {
			fmt.Fprintln(os.Stderr, "migrate:", err)
			os.Exit(1)
		}
	}

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var notifier *notify.Notifier
	if cfg.Telegram.MessageToken != "" && cfg.Telegram.AdminChatID != 0 {
		notifier, err = notify.New(cfg.Telegram.MessageToken, cfg.Telegram.AdminChatID)
		if err != nil {
			log.Error("message bot init", "error", err)
			notifier = nil
		} else {
			log.Info("message bot enabled", "chat_id", cfg.Telegram.AdminChatID)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := web.New(cfg, notifier, log)
	if err := srv.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "server:", err)
		os.Exit(1)
	}
}

func runMigrate(cfg *config.Config) {
	if err := db.Init(cfg.DB); err != nil {
		fmt.Fprintln(os.Stderr, "db:", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := applyMigrations(context.Background(), true); err != nil {
		fmt.Fprintln(os.Stderr, "migrate:", err)
		os.Exit(1)
	}
}

func runSeed(cfg *config.Config) {
	if err := db.Init(cfg.DB); err != nil {
		fmt.Fprintln(os.Stderr, "db:", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := services.Seed(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "seed:", err)
		os.Exit(1)
	}
}
