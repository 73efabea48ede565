package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ssinteriors/backend/internal/config"
	"github.com/ssinteriors/backend/internal/handler"
	"github.com/ssinteriors/backend/internal/logging"
	"github.com/ssinteriors/backend/internal/repository"
	"github.com/ssinteriors/backend/internal/service"
	"github.com/ssinteriors/backend/pkg/mailer"
	"github.com/ssinteriors/backend/pkg/mailer/resend"
	"github.com/ssinteriors/backend/pkg/mailer/senderapi"
	"github.com/ssinteriors/backend/pkg/mailer/smtp"
)

func main() {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	ctx := context.Background()

	// Persistence is optional: no DATABASE_URL means the enquiry store,
	// the listing route and the DB health probe are all disabled.
	var pool *pgxpool.Pool
	var enquiryRepo repository.EnquiryRepository
	if cfg.DatabaseURL != "" {
		var err error
		pool, err = repository.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			logging.Fatal("failed to connect to database", "error", err)
		}
		defer pool.Close()
		enquiryRepo = repository.NewPgEnquiryRepository(pool)
	}

	sender, err := buildSender(cfg)
	if err != nil {
		logging.Fatal("invalid email configuration", "error", err)
	}

	enquiryService := service.NewEnquiryService(enquiryRepo, sender, service.EnquiryServiceConfig{
		Mode:      service.DispatchMode(cfg.DispatchMode),
		FromName:  cfg.FromName,
		FromEmail: cfg.FromEmail,
		Inbox:     cfg.EnquiryInbox,
	})

	var db handler.DB
	if pool != nil {
		db = pool
	}
	h := handler.New(db, cfg.FrontendURL, "http://localhost:3000")
	enquiryHandler := handler.NewEnquiryHandler(enquiryService)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)
	mux.HandleFunc("POST /api/enquiry", enquiryHandler.Submit)
	if enquiryRepo != nil {
		mux.HandleFunc("GET /api/enquiries", enquiryHandler.List)
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h.CORS(handler.SecurityHeaders(handler.RequestLogger(mux))),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "provider", cfg.EmailProvider, "dispatch_mode", cfg.DispatchMode)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}

	// Let in-flight background dispatches settle (and log) before exit.
	enquiryService.Wait()
}

// buildSender selects the delivery channel configured by EMAIL_PROVIDER.
func buildSender(cfg *config.Config) (mailer.Sender, error) {
	switch cfg.EmailProvider {
	case "sender":
		return senderapi.New(cfg.SenderAPIKey), nil
	case "resend":
		return resend.New(cfg.ResendAPIKey), nil
	case "smtp":
		return smtp.New(smtp.Config{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUser,
			Password: cfg.SMTPPass,
		}), nil
	default:
		return nil, fmt.Errorf("unknown EMAIL_PROVIDER %q", cfg.EmailProvider)
	}
}
