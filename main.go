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

	"github.com/spf13/cobra"

	"github.com/wanjiru121/loan-service/config"
	"github.com/wanjiru121/loan-service/domain"
	httpLayer "github.com/wanjiru121/loan-service/http"
	"github.com/wanjiru121/loan-service/repository"
	"github.com/wanjiru121/loan-service/service"
	"github.com/wanjiru121/loan-service/storage"
)

func main() {
	var (
		configPath string
		addr       string
		dataFile   string
	)

	rootCmd := &cobra.Command{
		Use:          "loan-service",
		Short:        "Loan tracking API over a JSON data file",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			if dataFile != "" {
				cfg.DataFile = dataFile
			}
			return run(cfg)
		},
	}

	rootCmd.Flags().StringVar(&configPath, "config", "", "path to YAML config file")
	rootCmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	rootCmd.Flags().StringVar(&dataFile, "data-file", "", "path to the loan data file (overrides config)")

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run(cfg config.Config) error {
	store := storage.NewFileStore(cfg.DataFile)

	loans, payments, err := store.Load()
	if errors.Is(err, domain.ErrNotFound) {
		log.Printf("Data file %s not found, seeding default dataset", cfg.DataFile)
		if err := store.Save(storage.DefaultLoans(), storage.DefaultPayments()); err != nil {
			return err
		}
		loans, payments, err = store.Load()
	}
	if err != nil {
		return err
	}

	loanRepo := repository.NewLoanRepositoryFrom(loans, payments)

	var cache repository.CacheRepository
	if cfg.RedisAddr != "" {
		cache = repository.NewRedisCache(cfg.RedisAddr)
	} else {
		cache = repository.NewMockCache()
	}

	loanService := service.NewLoanService(loanRepo, store, cache, cfg.GracePeriodDays)

	schema, err := httpLayer.NewSchema(loanService)
	if err != nil {
		return err
	}

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	mux.Handle(
		"/graphql",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			httpLayer.NewGraphQLHandler(&schema),
		),
	)
	mux.Handle(
		"/",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(httpLayer.HomeHandler),
		),
	)

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("Loan API listening on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return err
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
	return nil
}
