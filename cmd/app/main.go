package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/skyhold/outfitledger/internal/config"
	"github.com/skyhold/outfitledger/internal/depreciation"
	"github.com/skyhold/outfitledger/internal/market"
	"github.com/skyhold/outfitledger/internal/outfit"
	"github.com/skyhold/outfitledger/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	initLogger(cfg)

	model, err := depreciation.NewModel(cfg.DepreciationMin, cfg.DepreciationMax, cfg.DepreciationRate)
	if err != nil {
		log.Fatalf("Invalid depreciation config: %v", err)
	}

	ctx := context.Background()
	loader := outfit.NewLoader()
	outfitConfig, err := loader.Load(cfg.OutfitsPath)
	if err != nil {
		log.Fatalf("Failed to load outfits: %v", err)
	}
	registry, err := loader.BuildRegistry(ctx, outfitConfig)
	if err != nil {
		log.Fatalf("Failed to build outfit registry: %v", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // Game wear randomness, not security critical
	marketService, err := market.NewService(registry, model, rng)
	if err != nil {
		log.Fatalf("Failed to create market service: %v", err)
	}

	srv := server.NewServer(cfg.Port, marketService)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	case <-stop:
		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
		defer cancel()
		if err := srv.Stop(shutdownCtx); err != nil {
			log.Fatalf("Graceful shutdown failed: %v", err)
		}
	}
}
