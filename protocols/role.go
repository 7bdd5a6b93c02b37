package protocols

import (
	"fmt"
	"path/filepath"
	"slices"
)

// Role names a peer process; each listens on its own socket
type Role string

const (
	Cat         Role = "cat"
	Bctl        Role = "bctl"
	Buttons     Role = "buttons"
	Transmitter Role = "transmitter"
)

var Roles = []Role{Cat, Bctl, Buttons, Transmitter}

func ParseRole(str string) (Role, error) {
	role := Role(str)
	if !slices.Contains(Roles, role) {
		return "", fmt.Errorf("unknown role: %s", str)
	}
	return role, nil
}

// SocketPath is <dir>/<role>_socket
func SocketPath(dir string, role Role) string {
	return filepath.Join(dir, string(role)+"_socket")
}
