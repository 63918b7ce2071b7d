package ui

import (
	"fmt"
	"strings"

	"github.com/lowpass/chime/internal/state"
)

func (m Model) View() string {
	var b strings.Builder

	if m.menu != nil {
		b.WriteString(m.styles.title.Render(m.menu.Title))
		b.WriteString("\n")
		for i, item := range m.menu.Items {
			b.WriteString(m.styles.status.Render(fmt.Sprintf("%d. %s", i+1, item.Label)))
			b.WriteString("\n")
		}
		b.WriteString(m.styles.status.Render("press a number, any other key to close"))
		return b.String()
	}

	b.WriteString(m.list.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) statusLine() string {
	if m.errLine != "" {
		return m.styles.err.Render(m.errLine)
	}

	type nowPlaying struct {
		title   string
		source  state.PlaylistSource
		playing bool
	}
	now, ok := state.MapState(m.tracks.store, func(st *state.AppState) (nowPlaying, bool) {
		idx := st.Playback.CurrentIdx
		if idx < 0 || idx >= len(st.Playback.Queue) {
			return nowPlaying{}, false
		}
		return nowPlaying{
			title:   st.Playback.Queue[idx].Title,
			source:  st.Playback.Source,
			playing: st.Playback.Playing,
		}, true
	})

	parts := make([]string, 0, 4)
	if ok {
		marker := "⏸"
		if now.playing {
			marker = "▶"
		}
		parts = append(parts, fmt.Sprintf("%s %s", marker, now.title))
		parts = append(parts, "from "+m.styles.source.Render(now.source.String()))
	}
	if m.selection {
		count := 0
		if sel, ok := m.tracks.Selection(); ok {
			count = sel.Count()
		}
		parts = append(parts, fmt.Sprintf("%d selected", count))
	}
	if m.loading {
		parts = append(parts, labelLoading)
	}
	if len(parts) == 0 {
		if len(m.list.Items()) == 0 {
			return m.styles.status.Render(labelEmptyList)
		}
		return m.styles.status.Render(m.status)
	}
	return m.styles.status.Render(strings.Join(parts, "  ·  "))
}
