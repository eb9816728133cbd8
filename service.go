package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"

	"golang.org/x/exp/slog"
	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"

	"github.com/snipfeed/snipfeed/config"
	"github.com/snipfeed/snipfeed/handler"
	"github.com/snipfeed/snipfeed/storage"
	"github.com/snipfeed/snipfeed/summarize"
	"github.com/snipfeed/snipfeed/textgen"
	"github.com/snipfeed/snipfeed/youtube"
)

func main() {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stderr))

	cfg := config.Load()

	postgres, err := storage.NewPostgres(storage.PostgresInfo{
		Host:     cfg.Postgres.Host,
		Port:     cfg.Postgres.Port,
		User:     cfg.Postgres.User,
		Password: cfg.Postgres.Password,
		Database: cfg.Postgres.Database,
	})
	if err != nil {
		logger.Error("unable to connect to postgres", err)
		os.Exit(1)
	}
	videoRepo := storage.NewPostgresVideoRepository(postgres)

	// without a key the client still constructs; the orchestrator rejects
	// every request before a call is made
	ytOpts := []option.ClientOption{option.WithAPIKey(cfg.Keys.YouTube)}
	if cfg.Keys.YouTube == "" {
		ytOpts = []option.ClientOption{option.WithoutAuthentication()}
	}
	ytClient, err := yt.NewService(ctx, ytOpts...)
	if err != nil {
		logger.Error("unable to create youtube client", err)
		os.Exit(1)
	}
	metadata := youtube.NewService(ytClient)

	var generator textgen.Generator
	switch cfg.TextGenProvider {
	case config.ProviderOpenAI:
		generator = textgen.NewOpenAI(cfg.Keys.OpenAI)
	default:
		generator = textgen.NewGemini(cfg.Keys.Gemini, "", "")
	}

	orchestrator := summarize.NewOrchestrator(cfg, metadata, generator, videoRepo, logger)

	go http.ListenAndServe(fmt.Sprintf(":%s", cfg.APIPort), handler.NewServer(orchestrator, logger))
	logger.Info("http server started", slog.String("port", cfg.APIPort))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt)
	<-done

	logger.Info("service stopped")
}
