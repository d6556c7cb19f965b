package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/aimaverick/clarity/internal/config"
	"github.com/aimaverick/clarity/internal/delivery"
	"github.com/aimaverick/clarity/internal/report"
	"github.com/aimaverick/clarity/internal/site"
	"github.com/aimaverick/clarity/internal/store"
	"github.com/aimaverick/clarity/internal/telemetry"
)

func main() {
	var (
		addr   = flag.String("addr", "", "Listen address (overrides PORT)")
		webDir = flag.String("web-dir", "", "Directory containing static site files (overrides CLARITY_WEB_DIR)")
	)
	flag.Parse()

	cfg := config.Load()
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *webDir != "" {
		cfg.WebDir = *webDir
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	shutdownTracing, err := telemetry.Init(ctx, "clarity", cfg.OTLPEndpoint)
	if err != nil {
		log.Fatalf("telemetry: %v", err)
	}
	defer func() {
		flushCtx, flushCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer flushCancel()
		if err := shutdownTracing(flushCtx); err != nil {
			log.Printf("telemetry shutdown: %v", err)
		}
	}()

	var st store.Store
	if cfg.SQLitePath != "" {
		sq, err := store.NewSQLiteStore(cfg.SQLitePath)
		if err != nil {
			log.Fatalf("store: %v", err)
		}
		defer sq.Close()
		st = sq
		log.Printf("store: sqlite at %s", cfg.SQLitePath)
	} else {
		st = store.NewMemoryStore()
		log.Printf("store: in-memory (set CLARITY_DB_PATH to persist)")
	}

	var provider report.CompletionProvider
	if cfg.AnthropicAPIKey != "" {
		ap, err := report.NewAnthropicProvider(cfg.AnthropicAPIKey)
		if err != nil {
			log.Fatalf("provider: %v", err)
		}
		provider = ap
	} else {
		log.Printf("no ANTHROPIC_API_KEY set; reports will use the fallback template")
		provider = unavailableProvider{}
	}

	var mailer delivery.Mailer
	if cfg.SESAccessKey != "" && cfg.SESSecretKey != "" && cfg.SESSender != "" {
		sm, err := delivery.NewSESMailer(ctx, delivery.SESConfig{
			Region:    cfg.SESRegion,
			AccessKey: cfg.SESAccessKey,
			SecretKey: cfg.SESSecretKey,
			Sender:    cfg.SESSender,
		})
		if err != nil {
			log.Fatalf("mailer: %v", err)
		}
		mailer = sm
	} else {
		log.Printf("no SES credentials set; emails will be logged, not sent")
		mailer = logMailer{}
	}

	composer := report.NewComposer(provider, report.Config{ProviderTimeout: cfg.ProviderTimeout})
	svc := delivery.NewService(composer, mailer, st)
	handler := site.NewServer(svc, composer, st, delivery.NewChromiumPDFRenderer(), cfg.WebDir)

	log.Printf("clarity listening on %s (env=%s, web=%s)", cfg.Addr, cfg.Environment, cfg.WebDir)
	srv := &http.Server{Addr: cfg.Addr, Handler: handler}
	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			srv.Close()
		}
	}()
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

// unavailableProvider stands in when no API key is configured. Every call
// fails, which routes composition to the fallback template.
type unavailableProvider struct{}

func (unavailableProvider) Complete(context.Context, string) (string, error) {
	return "", errors.New("completion provider not configured")
}

// logMailer prints outgoing mail instead of sending it.
type logMailer struct{}

func (logMailer) Send(_ context.Context, e delivery.Email) error {
	log.Printf("mail (dev): to=%s subject=%q bytes=%d", e.To, e.Subject, len(e.HTML))
	return nil
}
