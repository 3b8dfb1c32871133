package fetch

import (
	"context"
	"fmt"

	"ewintr.nl/playlistgrab/model"
	"google.golang.org/api/youtube/v3"
)

// MaxResults is the largest page size the playlistItems endpoint accepts.
const MaxResults = 50

type Youtube struct {
	Client *youtube.Service
}

func NewYoutube(client *youtube.Service) *Youtube {
	return &Youtube{Client: client}
}

func (y *Youtube) ItemsPage(ctx context.Context, playlistID model.YoutubePlaylistID, pageToken string) (model.ItemsPage, error) {
	call := y.Client.PlaylistItems.
		List([]string{"snippet"}).
		PlaylistId(string(playlistID)).
		MaxResults(MaxResults)

	if pageToken != "" {
		call.PageToken(pageToken)
	}

	response, err := call.Context(ctx).Do()
	if err != nil {
		return model.ItemsPage{}, err
	}

	page := model.ItemsPage{
		Titles:        make([]string, 0, len(response.Items)),
		NextPageToken: response.NextPageToken,
	}
	if response.PageInfo != nil {
		page.TotalResults = response.PageInfo.TotalResults
	}
	for _, item := range response.Items {
		if item.Snippet == nil {
			return model.ItemsPage{}, fmt.Errorf("playlist item %s has no snippet", item.Id)
		}
		page.Titles = append(page.Titles, item.Snippet.Title)
	}

	return page, nil
}

func (y *Youtube) PlaylistTitle(ctx context.Context, playlistID model.YoutubePlaylistID) (string, bool, error) {
	call := y.Client.Playlists.
		List([]string{"snippet"}).
		Id(string(playlistID))

	response, err := call.Context(ctx).Do()
	if err != nil {
		return "", false, err
	}
	if len(response.Items) == 0 {
		return "", false, nil
	}

	item := response.Items[0]
	if item.Snippet == nil {
		return "", false, fmt.Errorf("playlist %s has no snippet", item.Id)
	}

	return item.Snippet.Title, true, nil
}
