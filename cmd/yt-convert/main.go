package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dustin/go-humanize"

	"github.com/handiism/youtube-converter/internal/config"
	"github.com/handiism/youtube-converter/internal/download"
	ioutils "github.com/handiism/youtube-converter/internal/io"
	"github.com/handiism/youtube-converter/internal/model"
)

func main() {
	// Command line flags
	var (
		urlFlag      = flag.String("url", "", "YouTube video or playlist URL")
		playlistFlag = flag.Bool("playlist", false, "Treat the URL as a playlist")
		formatFlag   = flag.String("format", "", "Target media type: mp4, mp3 or wav (overrides config)")
		outputFlag   = flag.String("output", "", "Output directory (overrides config)")
		configFlag   = flag.String("config", "", "Path to config file")
		fileFlag     = flag.String("file", "", "Convert a local file instead of downloading")
		verboseFlag  = flag.Bool("verbose", false, "Show verbose output")
	)

	flag.Parse()

	if *urlFlag == "" && *fileFlag == "" && flag.NArg() == 0 {
		fmt.Println("YouTube Converter - Download YouTube videos as mp4, mp3 or wav")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  yt-convert -url <URL> [options]")
		fmt.Println("  yt-convert <URL> [options]")
		fmt.Println("  yt-convert -file <path> -format mp3")
		fmt.Println()
		fmt.Println("For interactive mode, use: yt-convert-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Load config
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading .env: %v\n", err)
		os.Exit(1)
	}
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	settings.ApplyEnv()

	// Apply flags
	if *outputFlag != "" {
		settings.OutputDir = *outputFlag
	}
	if *formatFlag != "" {
		settings.DefaultMediaType = *formatFlag
	}
	if err := settings.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration:\n%v\n", err)
		os.Exit(1)
	}

	url := *urlFlag
	if url == "" && flag.NArg() > 0 {
		url = flag.Arg(0)
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	// Create manager with progress callback
	manager := download.NewManager(settings, func(event download.ProgressEvent) {
		if event.Level == download.LevelVerbose && !*verboseFlag {
			return
		}

		prefix := ""
		switch event.Level {
		case download.LevelError:
			prefix = "❌ "
		case download.LevelWarning:
			prefix = "⚠️  "
		case download.LevelSuccess:
			prefix = "✅ "
		case download.LevelInfo:
			prefix = "ℹ️  "
		default:
			prefix = "   "
		}

		if event.Total > 1 {
			prefix += fmt.Sprintf("[%d/%d] ", event.Index, event.Total)
		}
		fmt.Println(prefix + event.Message)
	})

	if *fileFlag != "" {
		convertFile(ctx, manager, *fileFlag, settings.MediaType())
		return
	}

	fmt.Println("🎬 YouTube Converter")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println()

	result, err := manager.Convert(ctx, model.Request{
		URI:             url,
		IsPlaylist:      *playlistFlag,
		TargetMediaType: settings.MediaType(),
	})
	if ctx.Err() != nil {
		fmt.Println("\nConversion cancelled.")
		os.Exit(130)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	if !result.Succeeded {
		fmt.Println(result.Error)
		os.Exit(1)
	}
	fmt.Printf("✨ %s Files are in %s\n", result.Message, manager.OutputDir())
}

func convertFile(ctx context.Context, manager *download.Manager, path string, target model.MediaType) {
	out, err := manager.ConvertFile(ctx, path, target)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Println("\nConversion cancelled.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✨ %s (%s)\n", out, humanize.Bytes(uint64(ioutils.FileSize(out))))
}
