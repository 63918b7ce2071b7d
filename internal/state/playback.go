package state

import "github.com/lowpass/chime/internal/model"

// PlaylistSource tags which list the playback queue mirrors, so the
// playback UI can show a "playing from" context.
type PlaylistSource int

const (
	SourceNone PlaylistSource = iota
	SourceSavedTracks
)

func (s PlaylistSource) String() string {
	switch s {
	case SourceSavedTracks:
		return "saved tracks"
	default:
		return "none"
	}
}

// PlaybackState holds the queue and the playback position within it.
// CurrentIdx is -1 when nothing is loaded.
type PlaybackState struct {
	Source     PlaylistSource
	Queue      []model.SongDescription
	QueueBatch model.Batch
	CurrentIdx int
	Playing    bool
}

// CurrentSongID reports the id of the song playback is positioned on, if
// any.
func (p *PlaybackState) CurrentSongID() (string, bool) {
	if p.CurrentIdx < 0 || p.CurrentIdx >= len(p.Queue) {
		return "", false
	}
	return p.Queue[p.CurrentIdx].ID, true
}

func (p *PlaybackState) reduce(a Action) []Event {
	switch act := a.(type) {
	case LoadPagedSongs:
		current, hadCurrent := p.CurrentSongID()
		p.Source = act.Source
		p.Queue = model.CloneSongs(act.Batch.Songs)
		p.QueueBatch = act.Batch.Batch
		p.CurrentIdx = -1
		if hadCurrent {
			// Keep the playing song current if it survived the queue swap.
			p.CurrentIdx = p.indexOf(current)
		}
		if p.CurrentIdx < 0 {
			p.Playing = false
		}
		return []Event{PlaybackSourceChanged{Source: act.Source}}

	case Load:
		idx := p.indexOf(act.ID)
		if idx < 0 {
			return nil
		}
		p.CurrentIdx = idx
		p.Playing = true
		return []Event{TrackChanged{ID: act.ID}}

	case TogglePlay:
		if p.CurrentIdx < 0 {
			return nil
		}
		p.Playing = !p.Playing
		return []Event{PlaybackToggled{Playing: p.Playing}}

	case NextTrack:
		return p.seek(p.CurrentIdx + 1)

	case PreviousTrack:
		return p.seek(p.CurrentIdx - 1)
	}
	return nil
}

func (p *PlaybackState) seek(idx int) []Event {
	if p.CurrentIdx < 0 || idx < 0 || idx >= len(p.Queue) {
		return nil
	}
	p.CurrentIdx = idx
	p.Playing = true
	return []Event{TrackChanged{ID: p.Queue[idx].ID}}
}

func (p *PlaybackState) indexOf(id string) int {
	for i, song := range p.Queue {
		if song.ID == id {
			return i
		}
	}
	return -1
}
