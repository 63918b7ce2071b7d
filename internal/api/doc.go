// Package api implements the HTTP client for the Chime library API.
//
// The client is a thin fetch layer: it requests pages of the user's saved
// tracks and decodes them into model values. It performs no caching and
// holds no mutable state, so a single instance is safely shared between the
// UI goroutine and background fetch tasks.
package api
