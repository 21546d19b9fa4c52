package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"ekthaa/internal/config"
	"ekthaa/internal/handler"
	"ekthaa/internal/invoice"
	"ekthaa/internal/middleware"
	"ekthaa/internal/pdf"
	"ekthaa/internal/port"
	"ekthaa/internal/repository/postgres"
	"ekthaa/internal/router"
	"ekthaa/internal/service"
	s3storage "ekthaa/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.Log.Level == "debug" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// HSN master is optional; without it totals carry no HSN warnings.
	var (
		hsnRepo port.HSNRepository
		lookup  *invoice.HSNLookup
		pinger  handler.Pinger
	)
	if cfg.DB.Enabled {
		db, err := postgres.NewDB(&cfg.DB)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()
		hsnRepo = postgres.NewHSNRepo(db)
		pinger = hsnRepo
	}
	if cfg.HSN.Enabled && hsnRepo != nil {
		loadCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.HSN.LoadTimeoutSec)*time.Second)
		lookup, err = service.LoadHSNLookup(loadCtx, hsnRepo)
		cancel()
		if err != nil {
			log.Printf("server: HSN master unavailable, continuing without warnings: %v", err)
		}
	}

	var storage port.ObjectStorage
	if cfg.Archive.Enabled {
		storage, err = s3storage.NewArchive(ctx, &cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 archive: %w", err)
		}
	}

	// Initialize services
	invoiceSvc := service.NewInvoiceService(pdf.NewRenderer(&cfg.PDF), lookup, storage, &cfg.S3, &cfg.Archive)
	catalogSvc := service.NewCatalogService()

	global := []gin.HandlerFunc{
		middleware.RequestID(),
		middleware.Recovery(),
		middleware.Logger(),
		middleware.CORS(&cfg.CORS),
	}
	var heavy []gin.HandlerFunc
	if cfg.RateLimit.Enabled {
		heavy = append(heavy, middleware.NewIPRateLimiter(ctx, &cfg.RateLimit).Middleware())
	}

	r := router.Setup(router.Handlers{
		Invoice: handler.NewInvoiceHandler(invoiceSvc),
		Catalog: handler.NewCatalogHandler(catalogSvc),
		Health:  handler.NewHealthHandler(pinger),
	}, global, heavy)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Printf("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
