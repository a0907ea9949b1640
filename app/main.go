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

	"github.com/blogcomb/blogcomb/app/api"
	"github.com/blogcomb/blogcomb/app/authors"
	"github.com/blogcomb/blogcomb/app/cfg"
	"github.com/blogcomb/blogcomb/app/corpus"
	"github.com/blogcomb/blogcomb/app/output"
	"github.com/blogcomb/blogcomb/app/post"
)

func main() {
	appCfg, args, err := cfg.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	logLevel := slog.LevelInfo
	if appCfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	command := "build"
	if len(args) > 0 {
		command = args[0]
	}

	slog.Info("Starting Blogcomb", "version", appCfg.Version, "command", command)

	ingester := post.NewIngester(appCfg, nil)

	authorsMap, err := authors.LoadMap(ingester.ContentDirs(), appCfg.AuthorsMapPath)
	if err != nil {
		slog.Error("Failed to load authors map", "path", appCfg.AuthorsMapPath, "error", err)
		os.Exit(1)
	}
	if authorsMap != nil {
		slog.Info("Authors map loaded", "authors", len(authorsMap))
		ingester = post.NewIngester(appCfg, authorsMap)
	}

	builder := corpus.NewBuilder(appCfg, ingester)

	built, err := builder.Build(context.Background())
	if err != nil {
		slog.Error("Corpus build failed", "error", err)
		os.Exit(1)
	}

	switch command {
	case "build":
		if err := output.NewWriter(appCfg).Run(built); err != nil {
			slog.Error("Output write failed", "error", err)
			os.Exit(1)
		}
	case "serve":
		serve(appCfg, builder, built)
	default:
		slog.Error("Unknown command", "command", command)
		os.Exit(1)
	}
}

// serve runs the preview HTTP server until interrupted.
func serve(appCfg *cfg.Cfg, builder *corpus.Builder, built *corpus.Corpus) {
	handler := api.NewHandler(appCfg, builder, built)
	server := api.NewServer(handler)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("Starting HTTP server", "port", appCfg.Port)
		slog.Info("Endpoints available",
			"posts", fmt.Sprintf("http://localhost:%s/posts", appCfg.Port),
			"feeds", fmt.Sprintf("http://localhost:%s/feeds/<rss|atom|json>", appCfg.Port),
			"health", fmt.Sprintf("http://localhost:%s/health", appCfg.Port))

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped")
	}
}
