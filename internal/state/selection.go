package state

import "github.com/lowpass/chime/internal/model"

// SelectionContext tags which list's selection is live. Only one list
// participates in selection at a time.
type SelectionContext int

const (
	ContextNone SelectionContext = iota
	ContextQueue
)

// SelectionState is the single shared selection slot. Songs holds full
// song values keyed by insertion order; switching context clears it, so a
// list never sees a stale selection from another context.
type SelectionState struct {
	Context SelectionContext
	Songs   []model.SongDescription
}

// IsSelected reports whether the song with the given id is in the set.
func (s *SelectionState) IsSelected(id string) bool {
	return s.indexOf(id) >= 0
}

// Count reports the number of selected songs.
func (s *SelectionState) Count() int {
	return len(s.Songs)
}

// AllSelected reports whether every given song is in the set.
func (s *SelectionState) AllSelected(songs []model.SongDescription) bool {
	for _, song := range songs {
		if !s.IsSelected(song.ID) {
			return false
		}
	}
	return true
}

// Clone returns an independent snapshot safe to hold past a read scope.
func (s *SelectionState) Clone() SelectionState {
	return SelectionState{Context: s.Context, Songs: model.CloneSongs(s.Songs)}
}

func (s *SelectionState) reduce(a Action) []Event {
	switch act := a.(type) {
	case Select:
		if s.Context != ContextQueue {
			return nil
		}
		added := 0
		for _, song := range act.Songs {
			if s.indexOf(song.ID) >= 0 {
				continue
			}
			s.Songs = append(s.Songs, song)
			added++
		}
		if added == 0 {
			return nil
		}
		return []Event{SelectionChanged{Count: len(s.Songs)}}

	case Deselect:
		if s.Context != ContextQueue {
			return nil
		}
		removed := 0
		for _, id := range act.IDs {
			if idx := s.indexOf(id); idx >= 0 {
				s.Songs = append(s.Songs[:idx], s.Songs[idx+1:]...)
				removed++
			}
		}
		if removed == 0 {
			return nil
		}
		return []Event{SelectionChanged{Count: len(s.Songs)}}

	case ChangeSelectionMode:
		next := ContextNone
		if act.Enabled {
			next = ContextQueue
		}
		if next == s.Context {
			return nil
		}
		s.Context = next
		s.Songs = nil
		return []Event{
			SelectionModeChanged{Context: next},
			SelectionChanged{Count: 0},
		}
	}
	return nil
}

func (s *SelectionState) indexOf(id string) int {
	for i, song := range s.Songs {
		if song.ID == id {
			return i
		}
	}
	return -1
}
