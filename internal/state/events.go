package state

// Event describes a completed state mutation. Events are delivered to
// subscribers synchronously from Apply, after the mutation, so a handler
// reading the store always sees the new state.
type Event interface {
	EventType() string
}

// Browser events.

// SavedTracksReset signals that the saved-tracks list was replaced
// wholesale and any rendering of it must start over.
type SavedTracksReset struct{}

// SavedTracksAppended signals that new songs were appended to the
// saved-tracks list. Start is the length of the list before the append, so
// a renderer that was in sync only needs the tail from Start onward.
type SavedTracksAppended struct {
	Start int
}

// SavedTracksLoadingChanged signals that a saved-tracks fetch started or
// finished.
type SavedTracksLoadingChanged struct {
	Loading bool
}

// FetchFailedEvent surfaces a failed background fetch to the UI.
type FetchFailedEvent struct {
	Err error
}

// NavigationRequested asks the shell to open the given destination.
type NavigationRequested struct {
	Destination Destination
}

// Playback events.

// PlaybackSourceChanged signals that the queue was replaced and which list
// it now mirrors.
type PlaybackSourceChanged struct {
	Source PlaylistSource
}

// TrackChanged signals that a different song became current.
type TrackChanged struct {
	ID string
}

// PlaybackToggled signals a pause or resume of the current song.
type PlaybackToggled struct {
	Playing bool
}

// Selection events.

// SelectionModeChanged signals that the selection context switched.
type SelectionModeChanged struct {
	Context SelectionContext
}

// SelectionChanged signals that songs were added to or removed from the
// selection set.
type SelectionChanged struct {
	Count int
}

func (SavedTracksReset) EventType() string          { return "browser.saved_tracks_reset" }
func (SavedTracksAppended) EventType() string       { return "browser.saved_tracks_appended" }
func (SavedTracksLoadingChanged) EventType() string { return "browser.saved_tracks_loading_changed" }
func (FetchFailedEvent) EventType() string          { return "browser.fetch_failed" }
func (NavigationRequested) EventType() string       { return "browser.navigation_requested" }
func (PlaybackSourceChanged) EventType() string     { return "playback.source_changed" }
func (TrackChanged) EventType() string              { return "playback.track_changed" }
func (PlaybackToggled) EventType() string           { return "playback.toggled" }
func (SelectionModeChanged) EventType() string      { return "selection.mode_changed" }
func (SelectionChanged) EventType() string          { return "selection.changed" }
