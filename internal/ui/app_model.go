package ui

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lowpass/chime/internal/state"
)

// songItem adapts a SongRow to the bubbles list widget.
type songItem struct {
	row SongRow
}

func (i songItem) Title() string       { return i.row.Title }
func (i songItem) Description() string { return i.row.Artists + "  " + i.row.Duration }
func (i songItem) FilterValue() string { return i.row.Title + " " + i.row.Artists }

// actionMsg carries a completed fetch result back onto the UI loop.
type actionMsg struct {
	action state.Action
}

// eventBuffer collects store events so the Update loop can apply them
// after a dispatch. Shared by pointer because Bubble Tea copies the model
// by value on every update.
type eventBuffer struct {
	mu     sync.Mutex
	events []state.Event
}

func (b *eventBuffer) push(ev state.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, ev)
}

func (b *eventBuffer) drain() []state.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.events
	b.events = nil
	return out
}

// Model is the Bubble Tea program for the music browser. All state
// mutation flows through the dispatcher; the model only holds rendering
// artifacts.
type Model struct {
	list       list.Model
	help       help.Model
	keys       keyMap
	styles     styles
	tracks     *SavedTracksModel
	dispatcher *state.AsyncDispatcher
	buf        *eventBuffer

	autoscroll bool
	selection  bool
	loading    bool
	status     string
	errLine    string
	menu       *Menu
	width      int
	height     int
}

// NewModel wires the shell to the store and playlist model. It subscribes
// to store events for the lifetime of the program.
func NewModel(store *state.Store, dispatcher *state.AsyncDispatcher, tracks *SavedTracksModel, themeName string, autoscroll bool) Model {
	theme := ThemeByName(themeName)
	st := newStyles(theme)

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Accent).BorderLeftForeground(theme.Accent)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Dim).BorderLeftForeground(theme.Accent)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Saved Tracks"
	l.SetShowHelp(false)
	l.SetStatusBarItemName("track", "tracks")
	l.Styles.Title = st.title

	buf := &eventBuffer{}
	store.Subscribe(buf.push)

	return Model{
		list:       l,
		help:       help.New(),
		keys:       defaultKeyMap(),
		styles:     st,
		tracks:     tracks,
		dispatcher: dispatcher,
		buf:        buf,
		autoscroll: autoscroll,
	}
}

// waitForAction blocks off the UI loop until a background fetch
// completes, then feeds its action into Update.
func waitForAction(d *state.AsyncDispatcher) tea.Cmd {
	return func() tea.Msg {
		a, ok := <-d.Completions()
		if !ok {
			return nil
		}
		return actionMsg{action: a}
	}
}

func (m Model) Init() tea.Cmd {
	m.tracks.LoadInitial()
	return waitForAction(m.dispatcher)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case actionMsg:
		m.dispatcher.Dispatch(msg.action)
		m.applyEvents()
		return m, waitForAction(m.dispatcher)

	case tea.KeyMsg:
		if m.menu != nil {
			return m.updateMenu(msg)
		}
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.Play):
			if id, ok := m.selectedID(); ok {
				m.tracks.Play(id)
				m.applyEvents()
			}
			return m, nil

		case key.Matches(msg, m.keys.Toggle):
			m.dispatcher.Dispatch(state.TogglePlay{})
			m.applyEvents()
			return m, nil

		case key.Matches(msg, m.keys.Next):
			m.dispatcher.Dispatch(state.NextTrack{})
			m.applyEvents()
			return m, nil

		case key.Matches(msg, m.keys.Previous):
			m.dispatcher.Dispatch(state.PreviousTrack{})
			m.applyEvents()
			return m, nil

		case key.Matches(msg, m.keys.LoadMore):
			if m.tracks.LoadMore() {
				m.applyEvents()
			}
			return m, nil

		case key.Matches(msg, m.keys.Selection):
			if m.selection {
				m.dispatcher.Dispatch(state.ChangeSelectionMode{Enabled: false})
			} else {
				m.tracks.EnableSelection()
			}
			m.applyEvents()
			return m, nil

		case key.Matches(msg, m.keys.Mark):
			if id, ok := m.selectedID(); ok {
				if sel, live := m.tracks.Selection(); live && sel.IsSelected(id) {
					m.tracks.DeselectSong(id)
				} else {
					m.tracks.SelectSong(id)
				}
				m.applyEvents()
			}
			return m, nil

		case key.Matches(msg, m.keys.SelectAll):
			for _, tool := range m.tracks.ToolsVisible() {
				if tool.ID == toolSelectAll {
					m.tracks.HandleToolActivated(tool)
				}
			}
			m.applyEvents()
			return m, nil

		case key.Matches(msg, m.keys.Menu):
			if id, ok := m.selectedID(); ok {
				if menu, found := m.tracks.MenuFor(id); found {
					m.menu = &menu
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// updateMenu handles input while a song context menu is open. Digits run
// the numbered action; anything else closes the menu.
func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	menu := *m.menu
	m.menu = nil

	runes := msg.String()
	if len(runes) != 1 || runes[0] < '1' || runes[0] > '9' {
		return m, nil
	}
	idx := int(runes[0] - '1')
	if idx >= len(menu.Items) {
		return m, nil
	}

	id, ok := m.selectedID()
	if !ok {
		return m, nil
	}
	actions, ok := m.tracks.ActionsFor(id)
	if !ok || idx >= len(actions) {
		return m, nil
	}
	action := actions[idx]
	if action.Do != nil {
		action.Do()
		m.applyEvents()
	} else if action.Link != "" {
		m.status = "Link: " + action.Link
	}
	return m, nil
}

func (m *Model) selectedID() (string, bool) {
	item, ok := m.list.SelectedItem().(songItem)
	if !ok {
		return "", false
	}
	return item.row.ID, true
}

// applyEvents drains the buffered store events and patches the rendered
// list. Diffing is delegated to the playlist model; the shell only
// applies the resulting patches.
func (m *Model) applyEvents() {
	for _, ev := range m.buf.drain() {
		if diff, ok := m.tracks.DiffForEvent(ev); ok {
			m.applyDiff(diff)
		}
		switch e := ev.(type) {
		case state.SavedTracksLoadingChanged:
			m.loading = e.Loading
		case state.FetchFailedEvent:
			m.errLine = fmt.Sprintf("Fetch failed: %v", e.Err)
		case state.SavedTracksReset, state.SavedTracksAppended:
			m.errLine = ""
		case state.SelectionModeChanged:
			m.selection = e.Context == state.ContextQueue
		case state.TrackChanged:
			if m.autoscroll && m.tracks.AutoscrollToPlaying() {
				m.scrollTo(e.ID)
			}
		case state.NavigationRequested:
			m.status = "Opening " + e.Destination.Name
		}
	}
}

func (m *Model) applyDiff(diff ListDiff) {
	switch d := diff.(type) {
	case Reset:
		items := make([]list.Item, 0, len(d.Rows))
		for _, row := range d.Rows {
			items = append(items, songItem{row: row})
		}
		m.list.SetItems(items)
	case Append:
		items := m.list.Items()
		for _, row := range d.Rows {
			items = append(items, songItem{row: row})
		}
		m.list.SetItems(items)
	case Remove:
		drop := make(map[string]bool, len(d.IDs))
		for _, id := range d.IDs {
			drop[id] = true
		}
		items := m.list.Items()
		kept := items[:0]
		for _, item := range items {
			if si, ok := item.(songItem); ok && drop[si.row.ID] {
				continue
			}
			kept = append(kept, item)
		}
		m.list.SetItems(kept)
	}
}

func (m *Model) scrollTo(id string) {
	for i, item := range m.list.Items() {
		if si, ok := item.(songItem); ok && si.row.ID == id {
			m.list.Select(i)
			return
		}
	}
}
