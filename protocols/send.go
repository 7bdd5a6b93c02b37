package protocols

import (
	"context"
	"io"
	"time"

	"github.com/reusee/catdraw/drawconfigs"
	"github.com/reusee/catdraw/logs"
	"github.com/reusee/catdraw/nets"
)

// Send delivers one line to a peer: connect, write, disconnect. There is no
// acknowledgement.
type Send func(ctx context.Context, role Role, line string) error

const sendTimeout = 5 * time.Second

func (Module) Send(
	dialer nets.Dialer,
	dir drawconfigs.SocketDir,
	logger logs.Logger,
) Send {
	return func(ctx context.Context, role Role, line string) (err error) {
		defer func() {
			if err != nil {
				err = wrap(err)
			}
		}()

		ctx, cancel := context.WithTimeout(ctx, sendTimeout)
		defer cancel()

		path := SocketPath(string(dir), role)
		conn, err := dialer.DialContext(ctx, "unix", path)
		if err != nil {
			return err
		}
		defer conn.Close()
		if deadline, ok := ctx.Deadline(); ok {
			if err := conn.SetWriteDeadline(deadline); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(conn, line+"\n"); err != nil {
			return err
		}
		logger.DebugContext(ctx, "sent",
			"role", role,
			"line", line,
		)
		return nil
	}
}
