package api

import (
	"time"

	"github.com/lowpass/chime/internal/model"
)

// savedTracksResponse mirrors the payload returned by /me/tracks.
type savedTracksResponse struct {
	Items  []savedTrackItem `json:"items"`
	Offset int              `json:"offset"`
	Limit  int              `json:"limit"`
	Total  *int             `json:"total"`
}

type savedTrackItem struct {
	Track trackPayload `json:"track"`
}

type trackPayload struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	DurationMS int             `json:"duration_ms"`
	Artists    []artistPayload `json:"artists"`
	Album      albumPayload    `json:"album"`
}

type artistPayload struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type albumPayload struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (t trackPayload) toSong() model.SongDescription {
	artists := make([]model.ArtistRef, 0, len(t.Artists))
	for _, a := range t.Artists {
		artists = append(artists, model.ArtistRef{ID: a.ID, Name: a.Name})
	}
	return model.SongDescription{
		ID:       t.ID,
		Title:    t.Name,
		Artists:  artists,
		Album:    model.AlbumRef{ID: t.Album.ID, Title: t.Album.Name},
		Duration: time.Duration(t.DurationMS) * time.Millisecond,
	}
}

func (r savedTracksResponse) toSongBatch(offset, limit int) model.SongBatch {
	songs := make([]model.SongDescription, 0, len(r.Items))
	for _, item := range r.Items {
		songs = append(songs, item.Track.toSong())
	}
	total := model.TotalUnknown
	if r.Total != nil {
		total = *r.Total
	}
	return model.NewSongBatch(model.Batch{Offset: offset, Size: limit, Total: total}, songs)
}
