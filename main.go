package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"ewintr.nl/playlistgrab/console"
	"ewintr.nl/playlistgrab/export"
	"ewintr.nl/playlistgrab/fetch"
	"ewintr.nl/playlistgrab/model"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/exp/slog"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
	"gopkg.in/natefinch/lumberjack.v2"
)

const usage = `usage: %s <key> <id>

Save a YouTube playlist's video titles into a text file.

  key  your Google Developer API key
  id   the ID of the YouTube playlist
`

func main() {
	os.Exit(runCLI(os.Args, os.Stderr))
}

// runCLI takes the two positional arguments as they are, so a key or id
// starting with '-' is not mistaken for a flag.
func runCLI(args []string, stderr io.Writer) int {
	if len(args) != 3 {
		name := "playlistgrab"
		if len(args) > 0 {
			name = args[0]
		}
		fmt.Fprintf(stderr, usage, name)
		return 2
	}
	ref := model.PlaylistRef{
		APIKey:     args[1],
		PlaylistID: model.YoutubePlaylistID(args[2]),
	}

	if err := run(ref); err != nil {
		fmt.Fprintf(stderr, "error: %s\n", err)
		return 1
	}

	return 0
}

func run(ref model.PlaylistRef) error {
	_ = godotenv.Load()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := newLogger(cfg).With(slog.String("run", uuid.New().String()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := []option.ClientOption{option.WithAPIKey(ref.APIKey)}
	if cfg.APIEndpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.APIEndpoint))
	}
	ytClient, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return fmt.Errorf("unable to create youtube service: %w", err)
	}

	exporter := export.New(export.Config{
		Playlist: ref,
		Retry:    cfg.Retry,
	}, fetch.NewYoutube(ytClient), console.New(os.Stdout, console.DetectCharset()), logger)

	file, err := exporter.Run(ctx)
	if err != nil {
		return err
	}
	logger.Info("playlist saved", slog.String("path", file.Path), slog.Int("count", len(file.Lines)))

	return nil
}

func newLogger(cfg config) *slog.Logger {
	var out io.Writer = os.Stderr
	if cfg.LogFile != "" {
		out = io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
		})
	}

	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: cfg.LogLevel}))
}
