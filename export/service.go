package export

import (
	"context"

	"ewintr.nl/playlistgrab/model"
)

//go:generate mockgen -destination=../mocks/playlist_service.go -package=mocks ewintr.nl/playlistgrab/export PlaylistService

// PlaylistService is the part of the YouTube API the exporter needs.
type PlaylistService interface {
	ItemsPage(ctx context.Context, playlistID model.YoutubePlaylistID, pageToken string) (model.ItemsPage, error)
	PlaylistTitle(ctx context.Context, playlistID model.YoutubePlaylistID) (title string, found bool, err error)
}

// Echoer shows progress lines to the user.
type Echoer interface {
	Println(line string)
}
