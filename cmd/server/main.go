package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"partysheet/internal/config"
	"partysheet/internal/game"
	"partysheet/internal/host"
	"partysheet/internal/host/chatdb"
	"partysheet/internal/i18n"
	"partysheet/internal/session"
	"partysheet/internal/travel"
	"partysheet/internal/web"
)

func main() {
	log.SetPrefix("[PARTYSHEET] ")
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	roster, err := game.LoadRoster(cfg.Roster)
	if err != nil {
		return err
	}

	bundle, err := i18n.LoadEmbedded()
	if err != nil {
		return fmt.Errorf("load catalogs: %w", err)
	}
	if err := bundle.Register(); err != nil {
		return fmt.Errorf("register catalogs: %w", err)
	}
	lang := i18n.NewPrinter(bundle, cfg.Locale)
	if lang.Locale() != cfg.Locale {
		log.Printf("locale %q not available, using %s", cfg.Locale, lang.Locale())
	}

	var chat web.ChatStore = host.NewMemoryChat()
	if cfg.ChatDB != "" {
		db, err := chatdb.OpenSQLite(cfg.ChatDB)
		if err != nil {
			return err
		}
		defer db.Close()
		chat = db
	}

	tmpl, err := web.ParseTemplates()
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}

	sheets := host.NewSheets(nil)
	srv := &web.Server{
		Dispatcher: &travel.Dispatcher{
			Sheets:   sheets,
			Rolls:    &host.AutoRollDialog{Chat: chat, Lang: lang},
			Chat:     chat,
			Tables:   host.NewTables(roster.Tables),
			Info:     host.InfoLog{},
			Picker:   travel.DeferredPicker{},
			NotifyGM: cfg.NotifyGM,
		},
		Registry: host.NewRegistry(roster),
		Sheets:   sheets,
		Chat:     chat,
		Lang:     lang,
		Store:    session.NewMemoryStore[web.Visit](),
		Tmpl:     tmpl,
		DataDir:  cfg.DataDir,
	}

	httpSrv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", cfg.Addr)
		errc <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	log.Println("shutting down")
	return httpSrv.Shutdown(shutdownCtx)
}
