// Package model defines the value types shared across Chime: song
// descriptions as returned by the library API and the pagination cursors
// used to fetch them page by page.
//
// All types here have value semantics. A SongDescription is never mutated
// after creation; components copy freely and compare by ID.
package model
