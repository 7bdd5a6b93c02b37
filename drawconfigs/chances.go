package drawconfigs

import (
	"github.com/reusee/catdraw/cmds"
	"github.com/reusee/catdraw/configs"
)

// LowChance n means a low edge is taken with probability 1/(n+1)
type LowChance int

func (LowChance) ConfigExpr() string {
	return "low_chance"
}

var lowChanceFlag = cmds.Var[*int]("-low-chance")

func (Module) LowChance(
	loader configs.Loader,
) LowChance {
	return nonNegative(resolve(loader, (*LowChance)(*lowChanceFlag), 7))
}

// FairChance n means a fair edge is taken with probability 1/(n+1)
type FairChance int

func (FairChance) ConfigExpr() string {
	return "fair_chance"
}

func (Module) FairChance(
	loader configs.Loader,
) FairChance {
	return nonNegative(resolve(loader, nil, FairChance(1)))
}
