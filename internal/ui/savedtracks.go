package ui

import (
	"context"
	"log"

	"github.com/lowpass/chime/internal/api"
	"github.com/lowpass/chime/internal/model"
	"github.com/lowpass/chime/internal/state"
)

// SavedTracksModel is the playlist model for the user's saved-tracks list.
// It reads the shared store, dispatches actions, and diffs state-change
// events into list patches. One instance backs one open view; dropping it
// has no effect on shared state.
type SavedTracksModel struct {
	store      *state.Store
	dispatcher state.Dispatcher
	client     api.LibraryClient
	pageSize   int

	// rendered tracks how many rows the view has applied, to verify the
	// start index of incoming append events.
	rendered int
}

var (
	_ PlaylistModel       = (*SavedTracksModel)(nil)
	_ SelectionToolsModel = (*SavedTracksModel)(nil)
)

// NewSavedTracksModel builds a model over the shared store. pageSize is
// the fetch window for the initial load and every LoadMore.
func NewSavedTracksModel(store *state.Store, dispatcher state.Dispatcher, client api.LibraryClient, pageSize int) *SavedTracksModel {
	if pageSize <= 0 {
		pageSize = 50
	}
	return &SavedTracksModel{
		store:      store,
		dispatcher: dispatcher,
		client:     client,
		pageSize:   pageSize,
	}
}

// songs snapshots the accumulated saved-tracks list. Absent until the
// first page has arrived.
func (m *SavedTracksModel) songs() ([]model.SongDescription, bool) {
	return state.MapState(m.store, func(st *state.AppState) ([]model.SongDescription, bool) {
		if st.Browser.Home == nil {
			return nil, false
		}
		return model.CloneSongs(st.Browser.Home.SavedTracks), true
	})
}

func (m *SavedTracksModel) songByID(id string) (model.SongDescription, bool) {
	list, ok := m.songs()
	if !ok {
		return model.SongDescription{}, false
	}
	for _, song := range list {
		if song.ID == id {
			return song, true
		}
	}
	return model.SongDescription{}, false
}

// LoadInitial fetches the first page, replacing anything already loaded.
func (m *SavedTracksModel) LoadInitial() {
	size := m.pageSize
	m.dispatcher.Dispatch(state.SavedTracksLoading{})
	m.dispatcher.CallAndDispatch(func(ctx context.Context) (state.Action, error) {
		batch, err := m.client.GetSavedTracks(ctx, 0, size)
		if err != nil {
			return nil, err
		}
		return state.SetSavedTracks{Batch: batch}, nil
	})
}

// LoadMore fetches the page after the most recent one and reports whether
// a fetch was scheduled. It is a no-op while a fetch is already in flight
// or when the cursor says the collection is exhausted.
func (m *SavedTracksModel) LoadMore() bool {
	type cursorView struct {
		loading bool
		loaded  bool
		last    model.Batch
	}
	view, _ := state.MapState(m.store, func(st *state.AppState) (cursorView, bool) {
		v := cursorView{loading: st.Browser.Loading}
		if st.Browser.Home != nil {
			v.loaded = true
			v.last = st.Browser.Home.LastBatch
		}
		return v, true
	})
	if view.loading {
		return false
	}
	if !view.loaded {
		m.LoadInitial()
		return true
	}
	next, ok := view.last.Next()
	if !ok {
		return false
	}
	m.dispatcher.Dispatch(state.SavedTracksLoading{})
	m.dispatcher.CallAndDispatch(func(ctx context.Context) (state.Action, error) {
		batch, err := m.client.GetSavedTracks(ctx, next.Offset, next.Size)
		if err != nil {
			return nil, err
		}
		return state.AppendSavedTracks{Batch: batch}, nil
	})
	return true
}

func (m *SavedTracksModel) CurrentSongID() (string, bool) {
	return state.MapState(m.store, func(st *state.AppState) (string, bool) {
		return st.Playback.CurrentSongID()
	})
}

// Play loads the entire currently known list as the playback queue, then
// starts the given song. The queue must be established first so the
// "playing from saved tracks" association is correct when the track
// change lands.
func (m *SavedTracksModel) Play(id string) {
	batch, ok := state.MapState(m.store, func(st *state.AppState) (model.SongBatch, bool) {
		home := st.Browser.Home
		if home == nil {
			return model.SongBatch{}, false
		}
		return model.SongBatch{
			Batch: home.LastBatch,
			Songs: model.CloneSongs(home.SavedTracks),
		}, true
	})
	if !ok {
		return
	}
	m.dispatcher.Dispatch(state.LoadPagedSongs{Source: state.SourceSavedTracks, Batch: batch})
	m.dispatcher.Dispatch(state.Load{ID: id})
}

// DiffForEvent turns a state-change event into the minimal patch for the
// rendered list. Appends only carry the tail past the event's start
// index; if that index does not line up with what the view has rendered,
// the patch degrades to a full reset instead of corrupting the list.
func (m *SavedTracksModel) DiffForEvent(ev state.Event) (ListDiff, bool) {
	switch e := ev.(type) {
	case state.SavedTracksReset:
		list, ok := m.songs()
		if !ok {
			return nil, false
		}
		m.rendered = len(list)
		return Reset{Rows: rowsFor(list)}, true

	case state.SavedTracksAppended:
		list, ok := m.songs()
		if !ok {
			return nil, false
		}
		if e.Start != m.rendered || e.Start > len(list) {
			log.Printf("saved tracks append start %d does not match %d rendered rows, resetting", e.Start, m.rendered)
			m.rendered = len(list)
			return Reset{Rows: rowsFor(list)}, true
		}
		m.rendered = len(list)
		return Append{Rows: rowsFor(list[e.Start:])}, true
	}
	return nil, false
}

func (m *SavedTracksModel) AutoscrollToPlaying() bool {
	return true
}

// ActionsFor builds the per-item actions for one song: a view action per
// artist, a view-album action, and a copy-link action. Each action holds
// its own dispatcher handle so it stays valid if the menu outlives the
// view.
func (m *SavedTracksModel) ActionsFor(id string) ([]SongAction, bool) {
	song, ok := m.songByID(id)
	if !ok {
		return nil, false
	}
	d := m.dispatcher.Clone()
	actions := make([]SongAction, 0, len(song.Artists)+2)
	for _, artist := range song.Artists {
		artist := artist
		actions = append(actions, SongAction{
			ID:    actionViewArtistPrefix + artist.ID,
			Label: labelViewArtist + artist.Name,
			Do:    func() { d.Dispatch(state.ViewArtist{Artist: artist}) },
		})
	}
	album := song.Album
	actions = append(actions, SongAction{
		ID:    actionViewAlbum,
		Label: labelViewAlbum,
		Do:    func() { d.Dispatch(state.ViewAlbum{Album: album}) },
	})
	actions = append(actions, SongAction{
		ID:    actionCopyLink,
		Label: labelCopyLink,
		Link:  song.ShareURL(),
	})
	return actions, true
}

// MenuFor describes the context menu for one song, mirroring ActionsFor.
func (m *SavedTracksModel) MenuFor(id string) (Menu, bool) {
	song, ok := m.songByID(id)
	if !ok {
		return Menu{}, false
	}
	actions, ok := m.ActionsFor(id)
	if !ok {
		return Menu{}, false
	}
	items := make([]MenuItem, 0, len(actions))
	for _, a := range actions {
		items = append(items, MenuItem{ActionID: a.ID, Label: a.Label})
	}
	return Menu{Title: song.Title, Items: items}, true
}

// SelectSong resolves the id to its full song value and selects it.
// Selection stores whole songs so bulk tools can act without another
// state read. Unknown ids are ignored.
func (m *SavedTracksModel) SelectSong(id string) {
	song, ok := m.songByID(id)
	if !ok {
		return
	}
	m.dispatcher.Dispatch(state.Select{Songs: []model.SongDescription{song}})
}

func (m *SavedTracksModel) DeselectSong(id string) {
	m.dispatcher.Dispatch(state.Deselect{IDs: []string{id}})
}

// EnableSelection turns selection mode on. Always available for this
// list.
func (m *SavedTracksModel) EnableSelection() bool {
	m.dispatcher.Dispatch(state.ChangeSelectionMode{Enabled: true})
	return true
}

// Selection snapshots the shared selection while the queue context is
// live. Any other context reads as absent, never as an error.
func (m *SavedTracksModel) Selection() (state.SelectionState, bool) {
	return state.MapState(m.store, func(st *state.AppState) (state.SelectionState, bool) {
		if st.Selection.Context != state.ContextQueue {
			return state.SelectionState{}, false
		}
		return st.Selection.Clone(), true
	})
}
