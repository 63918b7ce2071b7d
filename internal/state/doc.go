// Package state holds the shared application state and the action pipeline
// that mutates it.
//
// The Store owns the entire AppState tree. Readers borrow it for the scope
// of a callback via View or MapState; writers go through Apply, which runs
// an action through the reducers and notifies subscribers of the resulting
// events before returning. All mutations are serialized by the store, so
// a subscriber reacting to an event always observes the already-mutated
// state.
//
// The AsyncDispatcher layers background work on top: CallAndDispatch runs
// a fetch off the UI loop and delivers the resulting action back through a
// completions channel the UI loop drains.
package state
