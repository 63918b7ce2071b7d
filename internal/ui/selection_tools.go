package ui

import "github.com/lowpass/chime/internal/state"

// ToolsVisible lists the bulk operations for the saved-tracks list. There
// is exactly one, select all.
func (m *SavedTracksModel) ToolsVisible() []SelectionTool {
	return []SelectionTool{
		{ID: toolSelectAll, Label: labelSelectAll},
	}
}

// HandleToolActivated runs a tool against the current selection. Select
// all toggles: when every rendered song is already selected it deselects
// them all instead. Tools this list does not know fall through to the
// shared default handler.
func (m *SavedTracksModel) HandleToolActivated(tool SelectionTool) {
	if tool.ID != toolSelectAll {
		DefaultHandleToolActivated(tool)
		return
	}
	sel, ok := m.Selection()
	if !ok {
		return
	}
	list, ok := m.songs()
	if !ok || len(list) == 0 {
		return
	}
	if sel.AllSelected(list) {
		ids := make([]string, 0, len(list))
		for _, song := range list {
			ids = append(ids, song.ID)
		}
		m.dispatcher.Dispatch(state.Deselect{IDs: ids})
		return
	}
	m.dispatcher.Dispatch(state.Select{Songs: list})
}
