package ui

import (
	"log"

	"github.com/lowpass/chime/internal/state"
)

// PlaylistModel is the capability set every browsable song list implements.
// Accessors degrade to absent results when backing state is unset; nothing
// here errors at a view boundary.
type PlaylistModel interface {
	// CurrentSongID reports the id of the song playback is on, if any.
	CurrentSongID() (string, bool)
	// Play makes this list the playback queue and starts the given song.
	Play(id string)
	// DiffForEvent translates a state-change event into a patch for the
	// rendered list, or reports false for events the list ignores.
	DiffForEvent(ev state.Event) (ListDiff, bool)
	// AutoscrollToPlaying reports whether the list should follow the
	// playing song.
	AutoscrollToPlaying() bool
	// ActionsFor returns the per-item actions for the song with the given
	// id, or false if the id is not currently rendered.
	ActionsFor(id string) ([]SongAction, bool)
	// MenuFor returns the context-menu descriptor for the given id.
	MenuFor(id string) (Menu, bool)
	// SelectSong adds the song to the shared selection. A no-op if the id
	// is not currently rendered.
	SelectSong(id string)
	// DeselectSong removes the song from the shared selection.
	DeselectSong(id string)
	// EnableSelection switches selection mode on and reports whether this
	// list supports it.
	EnableSelection() bool
	// Selection returns a snapshot of the shared selection, present only
	// while this list's selection context is live.
	Selection() (state.SelectionState, bool)
}

// SongAction is one invocable per-item action. Link carries a URL for
// actions that share rather than navigate.
type SongAction struct {
	ID    string
	Label string
	Link  string
	Do    func()
}

// Menu describes a context menu for one song.
type Menu struct {
	Title string
	Items []MenuItem
}

// MenuItem references a SongAction by id.
type MenuItem struct {
	ActionID string
	Label    string
}

// SelectionTool is one bulk operation shown while selection mode is on.
type SelectionTool struct {
	ID    string
	Label string
}

// SelectionToolsModel is the capability set for bulk selection operations.
// It is implemented by the same object as PlaylistModel so both observe
// one consistent selection snapshot within a tick.
type SelectionToolsModel interface {
	// ToolsVisible lists the tools this list offers for the current
	// selection.
	ToolsVisible() []SelectionTool
	// HandleToolActivated runs the given tool against the current
	// selection.
	HandleToolActivated(tool SelectionTool)
}

// DefaultHandleToolActivated is the fallback for tools a list does not
// handle itself.
func DefaultHandleToolActivated(tool SelectionTool) {
	log.Printf("unhandled selection tool %q", tool.ID)
}
