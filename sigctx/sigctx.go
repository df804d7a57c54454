// Package sigctx provides a context that is canceled by an interrupt
// signal.
package sigctx

import (
	"context"
	"os/signal"
	"syscall"
)

// New returns a context canceled on SIGINT or SIGTERM. A second signal
// kills the process the usual way.
func New() context.Context {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-ctx.Done()
		cancel()
	}()
	return ctx
}
