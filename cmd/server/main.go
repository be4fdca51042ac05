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

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/filterwise/conflint/internal/api"
	"github.com/filterwise/conflint/internal/config"
	"github.com/filterwise/conflint/internal/schema"
	"github.com/filterwise/conflint/internal/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	reg := schema.Default()
	if cfg.SchemaFile != "" {
		reg, err = schema.LoadFile(cfg.SchemaFile)
		if err != nil {
			log.Fatalf("schema: %v", err)
		}
	}
	log.Printf("schema: %d properties registered", len(reg.Properties()))

	telemetry.Init()

	srvAPI := api.NewServer(reg, cfg.AppEnv)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      srvAPI.Router(),
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		log.Printf("listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	metricsSrv := &http.Server{
		Addr:    cfg.MetricsAddr,
		Handler: promhttp.Handler(),
	}
	go func() {
		log.Printf("metrics on %s", cfg.MetricsAddr)
		if err := metricsSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics: %v", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	ctxShut, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctxShut)
	_ = metricsSrv.Shutdown(ctxShut)
	log.Println("stopped")
}
