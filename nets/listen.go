package nets

import (
	"errors"
	"io/fs"
	"net"
	"os"

	"golang.org/x/net/netutil"
)

// Listen binds a unix socket at path, replacing a stale socket file left by
// a previous run. At most maxConns connections are served at once.
func Listen(path string, maxConns int) (net.Listener, error) {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, wrap(err)
	}
	ln, err := net.Listen("unix", path)
	if err != nil {
		return nil, wrap(err)
	}
	ln = peerListener{
		Listener: ln,
	}
	if maxConns > 0 {
		ln = netutil.LimitListener(ln, maxConns)
	}
	return ln, nil
}
