// Package app provides the orchestration layer for the Chime application.
//
// # Overview
//
// This package wires together configuration, the API client, the shared
// state store, and the UI to create the complete Chime TUI experience. It
// serves as the composition root where all dependencies are initialized
// and connected.
//
// # Architecture
//
// The app package follows a simple initialization pattern:
//
//  1. Load configuration from ~/.config/chime/config.toml plus environment
//  2. Load user preferences (theme, autoscroll)
//  3. Initialize the HTTP client for the library API
//  4. Create the shared state.Store and its AsyncDispatcher
//  5. Start the TUI and block until the user exits or the context cancels
//
// Background fetches are driven by the dispatcher rather than a poller:
// the UI schedules a fetch, its result comes back over the dispatcher's
// completions channel, and the Bubble Tea loop feeds it into the store.
//
// # Error Handling
//
// Fatal errors (returned from Run): invalid configuration, API client
// initialization failure. Everything after startup is recoverable: failed
// fetches become FetchFailed actions and surface in the UI, never a
// crash.
package app
