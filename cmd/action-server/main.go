package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"reclamation-actions/internal/actions/submitreclamation"
	"reclamation-actions/internal/actions/trackreclamation"
	"reclamation-actions/internal/actions/validateform"
	"reclamation-actions/internal/common/config"
	"reclamation-actions/internal/common/logger"
	"reclamation-actions/internal/rasa"
	"reclamation-actions/internal/reclamation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewStructured(cfg.Logging.Level, cfg.Logging.Format)
	log.Info("Starting reclamation action server", map[string]interface{}{
		"name":        cfg.App.Name,
		"environment": cfg.App.Environment,
		"apiBase":     cfg.API.BaseURL,
		"address":     cfg.Server.Address(),
	})

	client := reclamation.NewClient(cfg.API.BaseURL, cfg.API.GetTimeout(), log)

	submitCfg := submitreclamation.DefaultConfig()
	submitCfg.Timeout = cfg.API.GetTimeout()

	trackCfg := trackreclamation.DefaultConfig()
	trackCfg.Timeout = cfg.API.GetTimeout()

	server, err := rasa.NewServer(log,
		validateform.NewHandler(log),
		submitreclamation.NewHandler(submitCfg, client, log),
		trackreclamation.NewHandler(trackCfg, client, log),
	)
	if err != nil {
		log.Error("Failed to build webhook server", map[string]interface{}{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	log.Info("Registered actions", map[string]interface{}{
		"actions": server.ActionNames(),
	})

	httpServer := &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           server,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server failed", map[string]interface{}{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	case sig := <-stop:
		log.Info("Shutting down", map[string]interface{}{
			"signal": sig.String(),
		})
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error("Graceful shutdown failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
}
