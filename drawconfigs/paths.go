package drawconfigs

import (
	"github.com/reusee/catdraw/cmds"
	"github.com/reusee/catdraw/configs"
)

type SocketDir string

func (SocketDir) ConfigExpr() string {
	return "socket_dir"
}

var socketDirFlag = cmds.Var[*string]("-socket-dir")

func (Module) SocketDir(
	loader configs.Loader,
) SocketDir {
	return resolve(loader, (*SocketDir)(*socketDirFlag), "/tmp")
}

// AssetsDir holds the sprite directories and the idle image
type AssetsDir string

func (AssetsDir) ConfigExpr() string {
	return "assets_dir"
}

var assetsDirFlag = cmds.Var[*string]("-assets")

func (Module) AssetsDir(
	loader configs.Loader,
) AssetsDir {
	return resolve(loader, (*AssetsDir)(*assetsDirFlag), "assets")
}

// FontPath is a TrueType or OpenType file; empty means the built-in font
type FontPath string

func (FontPath) ConfigExpr() string {
	return "font_path"
}

var fontPathFlag = cmds.Var[*string]("-font")

func (Module) FontPath(
	loader configs.Loader,
) FontPath {
	return resolve(loader, (*FontPath)(*fontPathFlag), "")
}

type FontSize float64

func (FontSize) ConfigExpr() string {
	return "font_size"
}

func (Module) FontSize(
	loader configs.Loader,
) FontSize {
	return resolve(loader, nil, FontSize(32))
}
