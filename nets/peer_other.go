//go:build !linux

package nets

import (
	"errors"
	"net"
)

func peerPID(conn net.Conn) (int, error) {
	return 0, errors.ErrUnsupported
}
