package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	stdhttp "net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	http "github.com/vncsmyrnk/leads/internal/adapters/handler/http"
	"github.com/vncsmyrnk/leads/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/leads/internal/config"
	"github.com/vncsmyrnk/leads/internal/core/services"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := postgres.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatal(err)
	}

	credRepo := postgres.NewCredentialRepository(db)
	leadRepo := postgres.NewLeadRepository(db)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := services.Seed(ctx, credRepo, leadRepo); err != nil {
		log.Fatal(err)
	}

	tokenSvc := services.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authSvc := services.NewAuthService(credRepo, tokenSvc)
	leadSvc := services.NewLeadService(leadRepo)

	authHandler := http.NewAuthHandler(authSvc)
	leadHandler := http.NewLeadHandler(leadSvc)
	handler := http.NewHandler(authHandler, leadHandler, tokenSvc, cfg.AllowedOrigins)

	server := &stdhttp.Server{Addr: cfg.Addr, Handler: handler}

	go func() {
		log.Printf("listening on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Gracefully shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal(err)
	}
}
