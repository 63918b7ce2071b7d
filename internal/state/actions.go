package state

import "github.com/lowpass/chime/internal/model"

// Action is an intent to mutate the application state. Actions are the only
// mutation vector into AppState; every concrete action is handled by exactly
// one reducer in reduce.
type Action interface {
	ActionType() string
}

// Browser actions.

// SavedTracksLoading marks the saved-tracks list as having a fetch in
// flight, so duplicate load-more requests can be coalesced.
type SavedTracksLoading struct{}

// SetSavedTracks replaces the accumulated saved-tracks list with the given
// page, typically the first page of a full reload.
type SetSavedTracks struct {
	Batch model.SongBatch
}

// AppendSavedTracks appends one fetched page to the accumulated
// saved-tracks list. Appends are not deduplicated; the pagination cursor is
// the guard against fetching the same page twice.
type AppendSavedTracks struct {
	Batch model.SongBatch
}

// FetchFailed records a failed background fetch. Pagination state is left
// untouched so the same page can be retried.
type FetchFailed struct {
	Err error
}

// ViewArtist asks the shell to navigate to an artist page.
type ViewArtist struct {
	Artist model.ArtistRef
}

// ViewAlbum asks the shell to navigate to an album page.
type ViewAlbum struct {
	Album model.AlbumRef
}

// Playback actions.

// LoadPagedSongs replaces the playback queue with the given songs and tags
// the queue with the list they came from.
type LoadPagedSongs struct {
	Source PlaylistSource
	Batch  model.SongBatch
}

// Load starts playback of the song with the given id. The song must already
// be in the queue; an unknown id leaves playback unchanged.
type Load struct {
	ID string
}

// TogglePlay pauses or resumes the current song.
type TogglePlay struct{}

// NextTrack advances playback to the next queued song.
type NextTrack struct{}

// PreviousTrack moves playback back to the previous queued song.
type PreviousTrack struct{}

// Selection actions.

// Select adds the given songs to the selection set. Selection stores full
// song values so bulk operations can act without another state read.
type Select struct {
	Songs []model.SongDescription
}

// Deselect removes the songs with the given ids from the selection set.
type Deselect struct {
	IDs []string
}

// ChangeSelectionMode switches the global selection context between Queue
// and None. Leaving selection mode clears the selection set.
type ChangeSelectionMode struct {
	Enabled bool
}

func (SavedTracksLoading) ActionType() string  { return "browser.saved_tracks_loading" }
func (SetSavedTracks) ActionType() string      { return "browser.set_saved_tracks" }
func (AppendSavedTracks) ActionType() string   { return "browser.append_saved_tracks" }
func (FetchFailed) ActionType() string         { return "browser.fetch_failed" }
func (ViewArtist) ActionType() string          { return "browser.view_artist" }
func (ViewAlbum) ActionType() string           { return "browser.view_album" }
func (LoadPagedSongs) ActionType() string      { return "playback.load_paged_songs" }
func (Load) ActionType() string                { return "playback.load" }
func (TogglePlay) ActionType() string          { return "playback.toggle_play" }
func (NextTrack) ActionType() string           { return "playback.next" }
func (PreviousTrack) ActionType() string       { return "playback.previous" }
func (Select) ActionType() string              { return "selection.select" }
func (Deselect) ActionType() string            { return "selection.deselect" }
func (ChangeSelectionMode) ActionType() string { return "app.change_selection_mode" }
