package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golfa/internal/config"
	"golfa/internal/domain"
	httpapi "golfa/internal/http"
	"golfa/internal/metrics"
	"golfa/internal/repository"
	"golfa/internal/service"

	_ "golfa/docs"
)

func main() {
	configPath := flag.String("config", os.Getenv("GOLFA_CONFIG"), "path to YAML config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	store, err := repository.NewFileStore(cfg.DataFile, domain.SeedProducts())
	if err != nil {
		log.Fatalf("store error: %v", err)
	}

	reg := metrics.NewRegistry()
	catalogSvc := service.NewCatalogService(store)
	productsSvc := service.NewProductService(store)
	ordersSvc := service.NewOrderService(store, cfg.Order.WhatsAppNumber, cfg.Order.Email, cfg.Order.StoreName)

	srv := httpapi.NewServer(catalogSvc, productsSvc, ordersSvc, reg)

	httpServer := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: srv.Engine(),
	}

	go func() {
		log.Printf("HTTP server listening on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
