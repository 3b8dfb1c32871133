package export

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"ewintr.nl/playlistgrab/model"
	"golang.org/x/exp/slog"
)

type Config struct {
	Playlist  model.PlaylistRef
	OutputDir string
	Retry     RetryConfig
	Now       func() time.Time
}

// Exporter saves the titles of one playlist into a text file.
type Exporter struct {
	cfg     Config
	service PlaylistService
	echo    Echoer
	logger  *slog.Logger
}

func New(cfg Config, service PlaylistService, echo Echoer, logger *slog.Logger) *Exporter {
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &Exporter{
		cfg:     cfg,
		service: service,
		echo:    echo,
		logger:  logger,
	}
}

// Run fetches the playlist and writes it to <title>_<YYYYMMDD>.txt in the
// output directory. Any failure aborts the run; a partially written file is
// left as is.
func (e *Exporter) Run(ctx context.Context) (model.ExportFile, error) {
	items, err := e.FetchAllItems(ctx)
	if err != nil {
		return model.ExportFile{}, err
	}

	name, err := e.FetchPlaylistName(ctx)
	if err != nil {
		return model.ExportFile{}, err
	}
	sanitized, err := SanitizeForFilename(name)
	if err != nil {
		return model.ExportFile{}, fmt.Errorf("failed to derive filename: %w", err)
	}

	file := model.ExportFile{
		Path:  filepath.Join(e.cfg.OutputDir, BuildFilename(sanitized, e.cfg.Now())),
		Lines: make([]string, 0, len(items)),
	}
	for _, item := range items {
		file.Lines = append(file.Lines, item.Line())
	}
	if err := WriteExport(file.Path, items); err != nil {
		return model.ExportFile{}, fmt.Errorf("failed to write export: %w", err)
	}

	e.logger.Info("export written", slog.String("path", file.Path), slog.Int("count", len(items)))
	return file, nil
}

func (e *Exporter) FetchPlaylistName(ctx context.Context) (string, error) {
	playlistID := e.cfg.Playlist.PlaylistID
	e.logger.Info("fetching playlist name", slog.String("playlistid", string(playlistID)))

	var title string
	var found bool
	err := e.withRetry(ctx, "get playlist", func() error {
		var err error
		title, found, err = e.service.PlaylistTitle(ctx, playlistID)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("failed to fetch playlist name: %w", err)
	}
	if !found {
		return "", fmt.Errorf("playlist %s: %w", playlistID, ErrNotFound)
	}

	return title, nil
}

// FetchAllItems follows the page token chain until a page comes back without
// a next token. Items are numbered in the order they are received.
func (e *Exporter) FetchAllItems(ctx context.Context) ([]model.PlaylistItem, error) {
	playlistID := e.cfg.Playlist.PlaylistID
	e.logger.Info("fetching playlist items", slog.String("playlistid", string(playlistID)))

	items := []model.PlaylistItem{}
	var total int64
	token := ""
	for pageNr := 1; ; pageNr++ {
		page, err := e.fetchPage(ctx, playlistID, token)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch page %d: %w", pageNr, err)
		}
		if pageNr == 1 {
			total = page.TotalResults
		}

		for _, title := range page.Titles {
			item := model.PlaylistItem{Index: len(items) + 1, Title: title}
			items = append(items, item)
			e.echo.Println(item.Line())
		}
		e.logger.Debug("fetched playlist page", slog.Int("page", pageNr), slog.Int("count", len(page.Titles)), slog.String("nextpagetoken", page.NextPageToken))

		if page.NextPageToken == "" {
			break
		}
		token = page.NextPageToken
	}

	if int64(len(items)) != total {
		e.logger.Warn("item count differs from reported total", slog.Int("count", len(items)), slog.Int64("total", total))
	}

	return items, nil
}

func (e *Exporter) fetchPage(ctx context.Context, playlistID model.YoutubePlaylistID, token string) (model.ItemsPage, error) {
	var page model.ItemsPage
	err := e.withRetry(ctx, "list playlist items", func() error {
		var err error
		page, err = e.service.ItemsPage(ctx, playlistID, token)
		return err
	})

	return page, err
}
