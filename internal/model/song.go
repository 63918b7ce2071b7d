package model

import (
	"fmt"
	"strings"
	"time"
)

// ArtistRef identifies one credited artist on a song.
type ArtistRef struct {
	ID   string
	Name string
}

// AlbumRef identifies the album a song belongs to.
type AlbumRef struct {
	ID    string
	Title string
}

// SongDescription is an immutable description of a single song. Identity is
// the ID; copies are cheap and instances are never mutated in place.
type SongDescription struct {
	ID       string
	Title    string
	Artists  []ArtistRef
	Album    AlbumRef
	Duration time.Duration
}

// ArtistLine renders the credited artists as a single display string.
func (s SongDescription) ArtistLine() string {
	names := make([]string, 0, len(s.Artists))
	for _, a := range s.Artists {
		names = append(names, a.Name)
	}
	return strings.Join(names, ", ")
}

// DurationLabel formats the duration as m:ss for list display.
func (s SongDescription) DurationLabel() string {
	total := int(s.Duration / time.Second)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// ShareURL returns the public link for the song, used by copy-link actions.
func (s SongDescription) ShareURL() string {
	return "https://play.chime.dev/track/" + s.ID
}

// CloneSongs returns an independent copy of a song slice. Song values
// themselves are safe to share; only the slice header needs duplicating.
func CloneSongs(songs []SongDescription) []SongDescription {
	if len(songs) == 0 {
		return nil
	}
	dup := make([]SongDescription, len(songs))
	copy(dup, songs)
	return dup
}
