package nets

import (
	"fmt"
	"net"
)

// PeerAddr is the remote address of an accepted unix connection, with the
// peer's pid
type PeerAddr struct {
	net.Addr
	PID int
}

func (p PeerAddr) String() string {
	return fmt.Sprintf("pid:%d", p.PID)
}

type peerConn struct {
	net.Conn
	addr PeerAddr
}

func (p peerConn) RemoteAddr() net.Addr {
	return p.addr
}

// peerListener reads peer credentials at accept time, while the conn is
// still a *net.UnixConn
type peerListener struct {
	net.Listener
}

func (l peerListener) Accept() (net.Conn, error) {
	conn, err := l.Listener.Accept()
	if err != nil {
		return nil, err
	}
	pid, err := peerPID(conn)
	if err != nil {
		return conn, nil
	}
	return peerConn{
		Conn: conn,
		addr: PeerAddr{
			Addr: conn.RemoteAddr(),
			PID:  pid,
		},
	}, nil
}

// PeerPID returns the pid recorded for conn by Listen
func PeerPID(conn net.Conn) (int, bool) {
	addr, ok := conn.RemoteAddr().(PeerAddr)
	if !ok {
		return 0, false
	}
	return addr.PID, true
}
