package model

import "fmt"

type YoutubePlaylistID string

type PlaylistRef struct {
	APIKey     string
	PlaylistID YoutubePlaylistID
}

type PlaylistItem struct {
	Index int
	Title string
}

// Line renders the item the way it appears in the export and on the console.
func (i PlaylistItem) Line() string {
	return fmt.Sprintf("%d. %s", i.Index, i.Title)
}

// ItemsPage is one page of a playlist listing. An empty NextPageToken marks
// the last page.
type ItemsPage struct {
	Titles        []string
	NextPageToken string
	TotalResults  int64
}

type ExportFile struct {
	Path  string
	Lines []string
}
