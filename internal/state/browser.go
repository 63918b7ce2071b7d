package state

import "github.com/lowpass/chime/internal/model"

// DestinationKind tags where a navigation request points.
type DestinationKind int

const (
	DestinationArtist DestinationKind = iota
	DestinationAlbum
)

// Destination identifies a page the shell can navigate to.
type Destination struct {
	Kind DestinationKind
	ID   string
	Name string
}

// HomeState is the browser slice backing the home screen. SavedTracks is
// the accumulated list of every page fetched so far; LastBatch is the
// cursor of the most recent page and is what LoadMore advances from.
type HomeState struct {
	SavedTracks []model.SongDescription
	LastBatch   model.Batch
}

// BrowserState holds everything the library browser shows. Home is nil
// until the first page of saved tracks arrives.
type BrowserState struct {
	Home        *HomeState
	Loading     bool
	LastError   error
	Destination *Destination
}

func (b *BrowserState) reduce(a Action) []Event {
	switch act := a.(type) {
	case SavedTracksLoading:
		if b.Loading {
			return nil
		}
		b.Loading = true
		return []Event{SavedTracksLoadingChanged{Loading: true}}

	case SetSavedTracks:
		b.Home = &HomeState{
			SavedTracks: model.CloneSongs(act.Batch.Songs),
			LastBatch:   act.Batch.Batch,
		}
		b.LastError = nil
		evs := b.loadingDone()
		return append(evs, SavedTracksReset{})

	case AppendSavedTracks:
		if b.Home == nil {
			b.Home = &HomeState{}
		}
		start := len(b.Home.SavedTracks)
		b.Home.SavedTracks = append(b.Home.SavedTracks, model.CloneSongs(act.Batch.Songs)...)
		b.Home.LastBatch = act.Batch.Batch
		b.LastError = nil
		evs := b.loadingDone()
		return append(evs, SavedTracksAppended{Start: start})

	case FetchFailed:
		b.LastError = act.Err
		evs := b.loadingDone()
		return append(evs, FetchFailedEvent{Err: act.Err})

	case ViewArtist:
		b.Destination = &Destination{Kind: DestinationArtist, ID: act.Artist.ID, Name: act.Artist.Name}
		return []Event{NavigationRequested{Destination: *b.Destination}}

	case ViewAlbum:
		b.Destination = &Destination{Kind: DestinationAlbum, ID: act.Album.ID, Name: act.Album.Title}
		return []Event{NavigationRequested{Destination: *b.Destination}}
	}
	return nil
}

func (b *BrowserState) loadingDone() []Event {
	if !b.Loading {
		return nil
	}
	b.Loading = false
	return []Event{SavedTracksLoadingChanged{Loading: false}}
}
