package nets

import (
	"context"
	"errors"
	"net"
	"sync"

	"github.com/reusee/catdraw/logs"
)

// Serve accepts connections until ctx is done or the listener fails, running
// handle for each in its own goroutine and span. It returns after every
// handler has returned.
type Serve func(ctx context.Context, ln net.Listener, handle func(ctx context.Context, conn net.Conn) error) error

func (Module) Serve(
	logger logs.Logger,
	newSpan logs.NewSpan,
) Serve {
	return func(ctx context.Context, ln net.Listener, handle func(context.Context, net.Conn) error) error {
		var wg sync.WaitGroup
		defer wg.Wait()

		stop := context.AfterFunc(ctx, func() {
			ln.Close()
		})
		defer stop()

		for {
			conn, err := ln.Accept()
			if err != nil {
				if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
					return nil
				}
				return wrap(err)
			}

			wg.Go(func() {
				defer conn.Close()
				connCtx, _ := newSpan(ctx, "connection",
					"local", conn.LocalAddr().String(),
				)
				if pid, ok := PeerPID(conn); ok {
					logger.DebugContext(connCtx, "peer", "pid", pid)
				}
				stop := context.AfterFunc(connCtx, func() {
					conn.Close()
				})
				defer stop()
				if err := handle(connCtx, conn); err != nil && connCtx.Err() == nil {
					logger.WarnContext(connCtx, "connection", "error", logs.WrapSpan(connCtx, err))
				}
			})
		}
	}
}
