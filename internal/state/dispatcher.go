package state

import (
	"context"
	"log"

	"github.com/google/uuid"
)

// Dispatcher routes intents into the store. Per-item UI surfaces (context
// menus, selection tools) hold their own handle obtained via Clone, so a
// menu outliving its view can still dispatch safely.
type Dispatcher interface {
	// Dispatch applies a synchronous intent. Safe to call from any UI
	// callback; never blocks.
	Dispatch(a Action)
	// CallAndDispatch runs call off the UI loop and delivers its resulting
	// action through the completions channel. A call error is translated
	// into FetchFailed rather than surfaced to the caller.
	CallAndDispatch(call func(ctx context.Context) (Action, error))
	// Clone returns an independent handle to the same dispatcher.
	Clone() Dispatcher
}

// AsyncDispatcher is the production Dispatcher. Synchronous actions go
// straight to the store; asynchronous results are buffered on a channel
// that the UI loop drains, so completions are applied in the single UI
// execution context and never race another mutation.
type AsyncDispatcher struct {
	core *dispatcherCore
}

type dispatcherCore struct {
	ctx         context.Context
	store       *Store
	completions chan Action
}

var _ Dispatcher = (*AsyncDispatcher)(nil)

// NewDispatcher builds a dispatcher bound to the store. Fetches inherit
// ctx; cancelling it drops in-flight completions instead of delivering
// them.
func NewDispatcher(ctx context.Context, store *Store) *AsyncDispatcher {
	if ctx == nil {
		ctx = context.Background()
	}
	return &AsyncDispatcher{core: &dispatcherCore{
		ctx:         ctx,
		store:       store,
		completions: make(chan Action, 16),
	}}
}

func (d *AsyncDispatcher) Dispatch(a Action) {
	if a == nil {
		return
	}
	d.core.store.Apply(a)
}

func (d *AsyncDispatcher) CallAndDispatch(call func(ctx context.Context) (Action, error)) {
	core := d.core
	task := uuid.NewString()[:8]
	go func() {
		a, err := call(core.ctx)
		if err != nil {
			log.Printf("fetch %s failed: %v", task, err)
			a = FetchFailed{Err: err}
		}
		if a == nil {
			return
		}
		select {
		case core.completions <- a:
		case <-core.ctx.Done():
		}
	}()
}

func (d *AsyncDispatcher) Clone() Dispatcher {
	return &AsyncDispatcher{core: d.core}
}

// Completions exposes the channel carrying fetch results. The UI loop
// receives from it and feeds each action back through Dispatch.
func (d *AsyncDispatcher) Completions() <-chan Action {
	return d.core.completions
}
