package ui

import "github.com/lowpass/chime/internal/model"

// SongRow is the rendered form of one song, the unit the widget list
// holds. Rows are plain strings so the shell can display them without
// reaching back into the state tree.
type SongRow struct {
	ID       string
	Title    string
	Artists  string
	Duration string
}

// ListDiff is a minimal ordered patch bringing a rendered list in sync
// with the state it mirrors. The shell applies exactly one variant per
// event.
type ListDiff interface {
	isListDiff()
}

// Append adds rows to the end of the rendered list.
type Append struct {
	Rows []SongRow
}

// Reset replaces the rendered list wholesale.
type Reset struct {
	Rows []SongRow
}

// Remove drops the rows with the given ids.
type Remove struct {
	IDs []string
}

func (Append) isListDiff() {}
func (Reset) isListDiff()  {}
func (Remove) isListDiff() {}

func rowFor(song model.SongDescription) SongRow {
	return SongRow{
		ID:       song.ID,
		Title:    song.Title,
		Artists:  song.ArtistLine(),
		Duration: song.DurationLabel(),
	}
}

func rowsFor(songs []model.SongDescription) []SongRow {
	rows := make([]SongRow, 0, len(songs))
	for _, song := range songs {
		rows = append(rows, rowFor(song))
	}
	return rows
}
