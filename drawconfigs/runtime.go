package drawconfigs

import (
	"github.com/reusee/catdraw/cmds"
	"github.com/reusee/catdraw/configs"
)

// DisplayKind selects the display backend: epaper, terminal or log
type DisplayKind string

func (DisplayKind) ConfigExpr() string {
	return "display"
}

var displayFlag = cmds.Var[*string]("-display")

func (Module) DisplayKind(
	loader configs.Loader,
) DisplayKind {
	return resolve(loader, (*DisplayKind)(*displayFlag), "epaper")
}

// HaltCommand runs after a halt, split shell-style; empty disables it
type HaltCommand string

func (HaltCommand) ConfigExpr() string {
	return "halt_command"
}

var haltCommandFlag = cmds.Var[*string]("-halt-command")

func (Module) HaltCommand(
	loader configs.Loader,
) HaltCommand {
	return resolve(loader, (*HaltCommand)(*haltCommandFlag), "")
}

type InitialState string

func (InitialState) ConfigExpr() string {
	return "initial_state"
}

func (Module) InitialState(
	loader configs.Loader,
) InitialState {
	return resolve(loader, nil, InitialState("cat_climb"))
}

// MaxConns bounds concurrent peer connections
type MaxConns int

func (MaxConns) ConfigExpr() string {
	return "max_conns"
}

func (Module) MaxConns(
	loader configs.Loader,
) MaxConns {
	return resolve(loader, nil, MaxConns(16))
}
