package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/mgdigi/portfolio/backend/internal/config"
	"github.com/mgdigi/portfolio/backend/internal/handler"
	"github.com/mgdigi/portfolio/backend/internal/i18n"
	"github.com/mgdigi/portfolio/backend/internal/model/portfolio"
	"github.com/mgdigi/portfolio/backend/internal/service/chat"
	"github.com/mgdigi/portfolio/backend/internal/service/contact"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	contentStore := portfolio.NewMemoryStore(portfolio.Seed())

	chatService := chat.NewService(chat.Config{
		MinReplyDelay:   cfg.Chat.MinReplyDelay,
		MaxReplyDelay:   cfg.Chat.MaxReplyDelay,
		EventBuffer:     cfg.Chat.EventBuffer,
		DefaultLanguage: i18n.Language(cfg.Server.DefaultLanguage),
	})
	log.Printf("chat assistant ready, replies in [%s, %s)", cfg.Chat.MinReplyDelay, cfg.Chat.MaxReplyDelay)

	contactService := contact.NewService(contact.Config{
		SubmitDelay:     cfg.Contact.SubmitDelay,
		DefaultLanguage: i18n.Language(cfg.Server.DefaultLanguage),
	})

	router := handler.NewRouter(cfg.Server, contentStore, chatService, contactService)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("portfolio backend listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
