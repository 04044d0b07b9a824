package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	httpadapter "pivota/internal/adapters/http"
	"pivota/internal/adapters/notify"
	pg "pivota/internal/adapters/postgres"
	"pivota/internal/config"
	ports "pivota/internal/ports"
	onboardingsvc "pivota/internal/services/onboarding"
	reviewworker "pivota/internal/workers/kybreview"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("warning: %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required for Postgres adapters")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := pg.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		log.Fatalf("migrate error: %v", err)
	}

	// Wire repositories to services (ports)
	var _ ports.MerchantRepository = db
	var _ ports.DocumentRepository = db
	var _ ports.EventRepository = db
	var _ ports.ReviewJobRepository = db

	var notifier ports.Notifier
	if cfg.TelegramBotToken != "" && cfg.TelegramAdminChat != 0 {
		tg, err := notify.NewTelegram(cfg.TelegramBotToken, cfg.TelegramAdminChat)
		if err != nil {
			log.Printf("telegram notifier disabled: %v", err)
		} else {
			notifier = tg
			log.Printf("telegram notifier enabled for chat %d", cfg.TelegramAdminChat)
		}
	}

	onboarding := onboardingsvc.New(db, db, db, db, onboardingsvc.Config{
		ReviewDelay:          cfg.ReviewDelay,
		AutoApproveThreshold: cfg.AutoApproveThreshold,
		FullKYBDeadline:      cfg.FullKYBDeadline,
	})

	srv := httpadapter.New(onboarding)
	r := chi.NewRouter()
	r.Mount("/", srv.Routes())

	// Optional background review workers
	if cfg.ReviewWorkers > 0 {
		reviewer := reviewworker.Reviewer{Merchants: db, Events: db, Notifier: notifier}
		go reviewworker.Run(ctx, db, reviewer, cfg.ReviewWorkers, 500*time.Millisecond)
		log.Printf("kyb review workers started: %d (delay %s)", cfg.ReviewWorkers, cfg.ReviewDelay)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- http.ListenAndServe(cfg.ListenAddr, r) }()
	log.Printf("listening on %s", cfg.ListenAddr)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		log.Printf("shutting down on %s", sig)
		cancel()
		time.Sleep(300 * time.Millisecond)
	case err := <-errCh:
		log.Fatal(fmt.Errorf("server error: %w", err))
	}
}
