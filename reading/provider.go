package reading

import (
	"context"
	"errors"
)

// ErrInit marks a reading engine that could not be prepared.
var ErrInit = errors.New("reading provider initialization failed")

// Provider converts text to its hiragana reading.
type Provider interface {
	Init(ctx context.Context, location string) error
	Convert(ctx context.Context, text string) (string, error)
}

// Func adapts a conversion function into a Provider whose Init always
// succeeds.
type Func func(ctx context.Context, text string) (string, error)

func (f Func) Init(context.Context, string) error { return nil }

func (f Func) Convert(ctx context.Context, text string) (string, error) {
	return f(ctx, text)
}
