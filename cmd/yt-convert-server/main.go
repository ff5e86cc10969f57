package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/handiism/youtube-converter/internal/api"
	"github.com/handiism/youtube-converter/internal/config"
	"github.com/handiism/youtube-converter/internal/download"
	ioutils "github.com/handiism/youtube-converter/internal/io"
	"github.com/handiism/youtube-converter/internal/media"
)

func main() {
	configFlag := flag.String("config", "", "Path to config file")
	verboseFlag := flag.Bool("verbose", false, "Log verbose progress")
	flag.Parse()

	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("Error loading .env: %v", err)
	}

	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			log.Fatalf("Error loading config: %v", err)
		}
	}
	settings.ApplyEnv()
	if err := settings.Validate(); err != nil {
		log.Fatalf("Invalid configuration:\n%v", err)
	}

	if err := ioutils.EnsureDir(settings.OutputDir); err != nil {
		log.Fatalf("Error preparing output directory: %v", err)
	}

	ffmpeg := media.NewFFmpeg(settings.FFmpegPath)
	if !ffmpeg.Available() {
		log.Printf("Warning: %s not found, only mp4 conversions will work", settings.FFmpegPath)
	}

	manager := download.NewManager(settings, func(event download.ProgressEvent) {
		if event.Level == download.LevelVerbose && !*verboseFlag {
			return
		}
		log.Printf("[%s] %s", event.RunID, event.Message)
	})

	handler := api.NewHandler(manager, ffmpeg.Available)
	srv := &http.Server{
		Addr:              settings.ListenAddr,
		Handler:           api.NewRouter(handler, settings.AllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Shutdown: %v", err)
		}
	}()

	log.Printf("YouTube converter listening on %s, writing to %s", settings.ListenAddr, settings.OutputDir)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
