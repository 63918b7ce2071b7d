package state

// AppState is the root aggregate for everything the client shares across
// views. It is owned exclusively by the Store; views read it through scoped
// borrows and mutate it only by dispatching actions.
type AppState struct {
	Browser   BrowserState
	Playback  PlaybackState
	Selection SelectionState
}

// NewAppState returns the initial state of a fresh session.
func NewAppState() AppState {
	return AppState{
		Selection: SelectionState{Context: ContextNone},
	}
}

// reduce applies one action and reports the events it produced. Unknown
// actions are ignored; every known action is routed to exactly one slice
// reducer.
func (st *AppState) reduce(a Action) []Event {
	switch a.(type) {
	case SavedTracksLoading, SetSavedTracks, AppendSavedTracks, FetchFailed, ViewArtist, ViewAlbum:
		return st.Browser.reduce(a)
	case LoadPagedSongs, Load, TogglePlay, NextTrack, PreviousTrack:
		return st.Playback.reduce(a)
	case Select, Deselect, ChangeSelectionMode:
		return st.Selection.reduce(a)
	default:
		return nil
	}
}
