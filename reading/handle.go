package reading

import (
	"context"
	"fmt"
	"sync"
)

// Handle owns a Provider and initializes it on first use.
type Handle struct {
	provider Provider
	location string

	mu       sync.Mutex
	ready    bool
	inflight *initCall
}

type initCall struct {
	done chan struct{}
	err  error
}

// NewHandle returns a handle that will initialize p from location the first
// time Get is called.
func NewHandle(p Provider, location string) *Handle {
	return &Handle{provider: p, location: location}
}

// Get returns the initialized provider. Callers that arrive while an
// initialization is running wait for it instead of starting another. The
// initialization itself is not cancelled with ctx; ctx only bounds how long
// this caller waits.
func (h *Handle) Get(ctx context.Context) (Provider, error) {
	h.mu.Lock()
	if h.ready {
		h.mu.Unlock()
		return h.provider, nil
	}
	call := h.inflight
	if call == nil {
		call = &initCall{done: make(chan struct{})}
		h.inflight = call
		go h.initialize(context.WithoutCancel(ctx), call)
	}
	h.mu.Unlock()

	select {
	case <-call.done:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	if call.err != nil {
		return nil, call.err
	}
	return h.provider, nil
}

// Ready reports whether the provider has been initialized.
func (h *Handle) Ready() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.ready
}

func (h *Handle) initialize(ctx context.Context, call *initCall) {
	err := h.provider.Init(ctx, h.location)
	if err != nil {
		call.err = fmt.Errorf("%w: %w", ErrInit, err)
	}

	h.mu.Lock()
	h.ready = err == nil
	h.inflight = nil
	h.mu.Unlock()

	close(call.done)
}
