package state

import "testing"

func TestSelection_RequiresQueueContext(t *testing.T) {
	s := NewStore()

	if events := s.Apply(Select{Songs: songs("a")}); events != nil {
		t.Fatalf("select outside queue context emitted %v", events)
	}
	s.View(func(st *AppState) {
		if st.Selection.Count() != 0 {
			t.Fatal("selection recorded outside queue context")
		}
	})
}

func TestSelection_SelectDeselect(t *testing.T) {
	s := NewStore()
	s.Apply(ChangeSelectionMode{Enabled: true})

	events := s.Apply(Select{Songs: songs("a", "b")})
	if ev, ok := events[0].(SelectionChanged); !ok || ev.Count != 2 {
		t.Fatalf("event = %#v, want count 2", events[0])
	}

	// Re-selecting an already selected song changes nothing.
	if events := s.Apply(Select{Songs: songs("a")}); events != nil {
		t.Fatalf("reselect emitted %v", events)
	}

	events = s.Apply(Deselect{IDs: []string{"a", "missing"}})
	if ev, ok := events[0].(SelectionChanged); !ok || ev.Count != 1 {
		t.Fatalf("event = %#v, want count 1", events[0])
	}

	s.View(func(st *AppState) {
		if st.Selection.IsSelected("a") || !st.Selection.IsSelected("b") {
			t.Fatalf("selection = %v, want only b", st.Selection.Songs)
		}
	})
}

func TestSelection_ContextSwitchClears(t *testing.T) {
	s := NewStore()
	s.Apply(ChangeSelectionMode{Enabled: true})
	s.Apply(Select{Songs: songs("a", "b")})

	events := s.Apply(ChangeSelectionMode{Enabled: false})
	if len(events) != 2 {
		t.Fatalf("events = %v, want mode change then cleared selection", events)
	}
	if ev, ok := events[0].(SelectionModeChanged); !ok || ev.Context != ContextNone {
		t.Fatalf("event = %#v", events[0])
	}
	if ev, ok := events[1].(SelectionChanged); !ok || ev.Count != 0 {
		t.Fatalf("event = %#v, want empty selection", events[1])
	}

	// Toggling back in does not resurrect the old selection.
	s.Apply(ChangeSelectionMode{Enabled: true})
	s.View(func(st *AppState) {
		if st.Selection.Count() != 0 {
			t.Fatalf("selection = %v, want empty after round trip", st.Selection.Songs)
		}
	})

	// Enabling an already enabled mode is a no-op.
	if events := s.Apply(ChangeSelectionMode{Enabled: true}); events != nil {
		t.Fatalf("redundant mode change emitted %v", events)
	}
}

func TestSelection_AllSelected(t *testing.T) {
	s := NewStore()
	s.Apply(ChangeSelectionMode{Enabled: true})
	s.Apply(Select{Songs: songs("a", "b", "c")})

	s.View(func(st *AppState) {
		if !st.Selection.AllSelected(songs("a", "b")) {
			t.Fatal("subset not reported as all selected")
		}
		if st.Selection.AllSelected(songs("a", "z")) {
			t.Fatal("missing song reported as selected")
		}
	})
}
