// Package ui renders the music browser and wires user input into the
// action pipeline.
//
// The package is split in two layers. The playlist-model layer
// (SavedTracksModel and the PlaylistModel and SelectionToolsModel
// interfaces) is pure data plumbing: it reads the store, dispatches
// actions, and turns state-change events into ListDiff patches. The shell
// layer (Model, Run) is the Bubble Tea program that applies those patches
// to a widget list and maps key presses to playlist-model calls. The shell
// never touches AppState directly.
package ui
