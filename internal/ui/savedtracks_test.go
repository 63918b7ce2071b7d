package ui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/lowpass/chime/internal/model"
	"github.com/lowpass/chime/internal/state"
)

// recordingDispatcher applies actions to the store synchronously and
// records them in order. Fetch calls are held until flush so tests can
// observe the in-flight window.
type recordingDispatcher struct {
	rec *dispatchRecord
}

type dispatchRecord struct {
	store   *state.Store
	actions []state.Action
	pending []func(ctx context.Context) (state.Action, error)
}

func newRecordingDispatcher(store *state.Store) *recordingDispatcher {
	return &recordingDispatcher{rec: &dispatchRecord{store: store}}
}

func (d *recordingDispatcher) Dispatch(a state.Action) {
	if a == nil {
		return
	}
	d.rec.actions = append(d.rec.actions, a)
	d.rec.store.Apply(a)
}

func (d *recordingDispatcher) CallAndDispatch(call func(ctx context.Context) (state.Action, error)) {
	d.rec.pending = append(d.rec.pending, call)
}

func (d *recordingDispatcher) Clone() state.Dispatcher {
	return &recordingDispatcher{rec: d.rec}
}

// flush runs every held fetch and dispatches its result, mirroring the
// production completion path.
func (d *recordingDispatcher) flush() {
	pending := d.rec.pending
	d.rec.pending = nil
	for _, call := range pending {
		a, err := call(context.Background())
		if err != nil {
			a = state.FetchFailed{Err: err}
		}
		d.Dispatch(a)
	}
}

// fakeClient serves pages out of a canned collection.
type fakeClient struct {
	songs []model.SongDescription
	total int
	err   error
	calls []string
}

func (c *fakeClient) GetSavedTracks(ctx context.Context, offset, limit int) (model.SongBatch, error) {
	c.calls = append(c.calls, fmt.Sprintf("%d/%d", offset, limit))
	if c.err != nil {
		return model.SongBatch{}, c.err
	}
	end := offset + limit
	if end > len(c.songs) {
		end = len(c.songs)
	}
	var page []model.SongDescription
	if offset < end {
		page = c.songs[offset:end]
	}
	return model.NewSongBatch(model.Batch{Offset: offset, Size: limit, Total: c.total}, page), nil
}

func testSongs(ids ...string) []model.SongDescription {
	out := make([]model.SongDescription, 0, len(ids))
	for _, id := range ids {
		out = append(out, model.SongDescription{
			ID:      id,
			Title:   "Song " + id,
			Artists: []model.ArtistRef{{ID: "ar-" + id, Name: "Artist " + id}},
			Album:   model.AlbumRef{ID: "al-" + id, Title: "Album " + id},
		})
	}
	return out
}

func newTestModel(t *testing.T, songs []model.SongDescription, total int) (*SavedTracksModel, *state.Store, *recordingDispatcher, *fakeClient) {
	t.Helper()
	store := state.NewStore()
	d := newRecordingDispatcher(store)
	client := &fakeClient{songs: songs, total: total}
	return NewSavedTracksModel(store, d, client, 3), store, d, client
}

func TestSavedTracksModel_LoadMoreScenario(t *testing.T) {
	m, store, d, client := newTestModel(t, testSongs("a", "b", "c", "d", "e"), 5)

	m.LoadInitial()
	d.flush()
	if client.calls[0] != "0/3" {
		t.Fatalf("first fetch = %q, want 0/3", client.calls[0])
	}

	if !m.LoadMore() {
		t.Fatal("LoadMore refused with a page remaining")
	}
	d.flush()
	if client.calls[1] != "3/3" {
		t.Fatalf("second fetch = %q, want 3/3", client.calls[1])
	}

	store.View(func(st *state.AppState) {
		got := st.Browser.Home.SavedTracks
		if len(got) != 5 || got[3].ID != "d" || got[4].ID != "e" {
			t.Fatalf("saved tracks = %v, want a..e", got)
		}
		if _, ok := st.Browser.Home.LastBatch.Next(); ok {
			t.Fatal("cursor still has a next page after the short final page")
		}
	})

	if m.LoadMore() {
		t.Fatal("LoadMore scheduled a fetch past the end of the collection")
	}
}

func TestSavedTracksModel_LoadMoreCoalescesWhileInFlight(t *testing.T) {
	m, _, d, client := newTestModel(t, testSongs("a", "b", "c", "d"), 4)
	m.LoadInitial()
	d.flush()

	if !m.LoadMore() {
		t.Fatal("first LoadMore refused")
	}
	if m.LoadMore() {
		t.Fatal("second LoadMore scheduled a duplicate fetch while loading")
	}
	d.flush()
	if len(client.calls) != 2 {
		t.Fatalf("fetches = %v, want exactly two", client.calls)
	}
}

func TestSavedTracksModel_LoadMoreBeforeInitialLoads(t *testing.T) {
	m, store, d, client := newTestModel(t, testSongs("a"), 1)

	if !m.LoadMore() {
		t.Fatal("LoadMore on empty state did not schedule the initial fetch")
	}
	d.flush()
	if client.calls[0] != "0/3" {
		t.Fatalf("fetch = %q, want the first page", client.calls[0])
	}
	store.View(func(st *state.AppState) {
		if st.Browser.Home == nil || len(st.Browser.Home.SavedTracks) != 1 {
			t.Fatalf("state = %#v, want one loaded song", st.Browser)
		}
	})
}

func TestSavedTracksModel_FetchFailureKeepsCursor(t *testing.T) {
	m, store, d, client := newTestModel(t, testSongs("a", "b", "c", "d"), 4)
	m.LoadInitial()
	d.flush()

	client.err = errors.New("offline")
	if !m.LoadMore() {
		t.Fatal("LoadMore refused")
	}
	d.flush()

	store.View(func(st *state.AppState) {
		if len(st.Browser.Home.SavedTracks) != 3 {
			t.Fatalf("partial page merged: %v", st.Browser.Home.SavedTracks)
		}
		if st.Browser.LastError == nil {
			t.Fatal("failure not recorded")
		}
	})

	// The same page is retried once the failure clears.
	client.err = nil
	if !m.LoadMore() {
		t.Fatal("retry refused")
	}
	d.flush()
	if got := client.calls[len(client.calls)-1]; got != "3/3" {
		t.Fatalf("retry fetch = %q, want 3/3", got)
	}
}

func TestSavedTracksModel_PlayDispatchOrder(t *testing.T) {
	m, store, d, _ := newTestModel(t, testSongs("a", "b", "c", "d", "e"), 5)
	m.LoadInitial()
	d.flush()
	m.LoadMore()
	d.flush()
	before := len(d.rec.actions)

	m.Play("b")

	got := d.rec.actions[before:]
	if len(got) != 2 {
		t.Fatalf("actions = %v, want queue load then track load", got)
	}
	paged, ok := got[0].(state.LoadPagedSongs)
	if !ok {
		t.Fatalf("first action = %T, want LoadPagedSongs", got[0])
	}
	if paged.Source != state.SourceSavedTracks || len(paged.Batch.Songs) != 5 {
		t.Fatalf("queue load = %#v, want full saved-tracks page", paged)
	}
	if load, ok := got[1].(state.Load); !ok || load.ID != "b" {
		t.Fatalf("second action = %#v, want Load(b)", got[1])
	}

	id, ok := m.CurrentSongID()
	if !ok || id != "b" {
		t.Fatalf("current song = %q/%v, want b", id, ok)
	}
	store.View(func(st *state.AppState) {
		if st.Playback.Source != state.SourceSavedTracks {
			t.Fatalf("source = %v", st.Playback.Source)
		}
	})
}

func TestSavedTracksModel_PlayWithoutStateIsNoop(t *testing.T) {
	m, _, d, _ := newTestModel(t, nil, 0)
	m.Play("a")
	if len(d.rec.actions) != 0 {
		t.Fatalf("actions = %v, want none before any load", d.rec.actions)
	}
}

func TestSavedTracksModel_DiffAppend(t *testing.T) {
	m, store, d, _ := newTestModel(t, testSongs("a", "b", "c", "d", "e"), 5)

	m.LoadInitial()
	var events []state.Event
	cancel := store.Subscribe(func(ev state.Event) { events = append(events, ev) })
	defer cancel()
	d.flush()

	var diffs []ListDiff
	for _, ev := range events {
		if diff, ok := m.DiffForEvent(ev); ok {
			diffs = append(diffs, diff)
		}
	}
	if len(diffs) != 1 {
		t.Fatalf("diffs = %v, want a single reset", diffs)
	}
	reset, ok := diffs[0].(Reset)
	if !ok || len(reset.Rows) != 3 {
		t.Fatalf("diff = %#v, want Reset of 3 rows", diffs[0])
	}

	events = nil
	m.LoadMore()
	d.flush()
	diffs = nil
	for _, ev := range events {
		if diff, ok := m.DiffForEvent(ev); ok {
			diffs = append(diffs, diff)
		}
	}
	if len(diffs) != 1 {
		t.Fatalf("diffs = %v, want a single append", diffs)
	}
	appendDiff, ok := diffs[0].(Append)
	if !ok {
		t.Fatalf("diff = %#v, want Append", diffs[0])
	}
	if len(appendDiff.Rows) != 2 || appendDiff.Rows[0].ID != "d" || appendDiff.Rows[1].ID != "e" {
		t.Fatalf("append rows = %v, want d,e", appendDiff.Rows)
	}
	if appendDiff.Rows[0].Artists != "Artist d" {
		t.Fatalf("row artists = %q", appendDiff.Rows[0].Artists)
	}
}

func TestSavedTracksModel_DiffContractViolationFallsBackToReset(t *testing.T) {
	m, store, d, _ := newTestModel(t, testSongs("a", "b", "c", "d", "e"), 5)
	m.LoadInitial()
	d.flush()
	if diff, ok := m.DiffForEvent(state.SavedTracksReset{}); !ok {
		t.Fatalf("reset diff missing: %v", diff)
	}

	store.Apply(state.AppendSavedTracks{Batch: model.NewSongBatch(
		model.Batch{Offset: 3, Size: 3, Total: 5}, testSongs("d", "e"))})

	// A start index that does not match the rendered length degrades to a
	// full reset rather than duplicating rows.
	diff, ok := m.DiffForEvent(state.SavedTracksAppended{Start: 1})
	if !ok {
		t.Fatal("no diff for mismatched append")
	}
	reset, isReset := diff.(Reset)
	if !isReset {
		t.Fatalf("diff = %#v, want Reset fallback", diff)
	}
	if len(reset.Rows) != 5 {
		t.Fatalf("reset rows = %d, want full list", len(reset.Rows))
	}
}

func TestSavedTracksModel_DiffIgnoresUnrelatedEvents(t *testing.T) {
	m, _, d, _ := newTestModel(t, testSongs("a"), 1)

	if _, ok := m.DiffForEvent(state.SavedTracksAppended{Start: 0}); ok {
		t.Fatal("diff produced with no backing state")
	}

	m.LoadInitial()
	d.flush()
	if _, ok := m.DiffForEvent(state.TrackChanged{ID: "a"}); ok {
		t.Fatal("diff produced for a playback event")
	}
	if _, ok := m.DiffForEvent(state.SelectionChanged{Count: 1}); ok {
		t.Fatal("diff produced for a selection event")
	}
}

func TestSavedTracksModel_ActionsAndMenu(t *testing.T) {
	songs := testSongs("a")
	songs[0].Artists = append(songs[0].Artists, model.ArtistRef{ID: "ar-2", Name: "Second"})
	m, store, d, _ := newTestModel(t, songs, 1)
	m.LoadInitial()
	d.flush()

	actions, ok := m.ActionsFor("a")
	if !ok {
		t.Fatal("actions absent for a rendered song")
	}
	if len(actions) != 4 {
		t.Fatalf("actions = %v, want two artists + album + link", actions)
	}
	if actions[0].ID != "song.view_artist_ar-a" || actions[1].ID != "song.view_artist_ar-2" {
		t.Fatalf("artist actions = %q,%q", actions[0].ID, actions[1].ID)
	}

	actions[1].Do()
	store.View(func(st *state.AppState) {
		dest := st.Browser.Destination
		if dest == nil || dest.Kind != state.DestinationArtist || dest.ID != "ar-2" {
			t.Fatalf("destination = %#v, want second artist", dest)
		}
	})

	actions[2].Do()
	store.View(func(st *state.AppState) {
		if st.Browser.Destination.Kind != state.DestinationAlbum {
			t.Fatalf("destination = %#v, want album", st.Browser.Destination)
		}
	})

	if actions[3].Link != "https://play.chime.dev/track/a" {
		t.Fatalf("link = %q", actions[3].Link)
	}

	menu, ok := m.MenuFor("a")
	if !ok || menu.Title != "Song a" || len(menu.Items) != 4 {
		t.Fatalf("menu = %#v", menu)
	}
	if menu.Items[3].ActionID != actionCopyLink {
		t.Fatalf("last item = %#v, want copy link", menu.Items[3])
	}

	if _, ok := m.ActionsFor("missing"); ok {
		t.Fatal("actions produced for an absent id")
	}
	if _, ok := m.MenuFor("missing"); ok {
		t.Fatal("menu produced for an absent id")
	}
}

func TestSavedTracksModel_SelectResolvesFullSong(t *testing.T) {
	m, store, d, _ := newTestModel(t, testSongs("a", "b", "c"), 3)
	m.LoadInitial()
	d.flush()

	if !m.EnableSelection() {
		t.Fatal("selection mode unavailable")
	}
	before := len(d.rec.actions)

	m.SelectSong("x")
	if len(d.rec.actions) != before {
		t.Fatalf("actions = %v, want none for an unknown id", d.rec.actions[before:])
	}

	m.SelectSong("b")
	sel, ok := m.Selection()
	if !ok {
		t.Fatal("selection absent in queue context")
	}
	if sel.Count() != 1 || !sel.IsSelected("b") {
		t.Fatalf("selection = %#v, want b", sel)
	}
	if sel.Songs[0].Title != "Song b" {
		t.Fatalf("stored song = %#v, want the full value", sel.Songs[0])
	}

	m.DeselectSong("b")
	sel, _ = m.Selection()
	if sel.Count() != 0 {
		t.Fatalf("selection = %#v, want empty", sel)
	}

	store.Apply(state.ChangeSelectionMode{Enabled: false})
	if _, ok := m.Selection(); ok {
		t.Fatal("selection visible outside queue context")
	}
}
