package displays

import (
	"fmt"

	"github.com/reusee/catdraw/drawconfigs"
	"github.com/reusee/catdraw/logs"
	"github.com/reusee/dscope"
	"golang.org/x/image/font/basicfont"
)

type Module struct {
	dscope.Module
	Configs drawconfigs.Module
}

func (Module) Composer(
	assets drawconfigs.AssetsDir,
	fontPath drawconfigs.FontPath,
	fontSize drawconfigs.FontSize,
	logger logs.Logger,
) *Composer {
	face, err := LoadFace(string(fontPath), float64(fontSize))
	if err != nil {
		logger.Warn("font", "path", fontPath, "error", err)
		return NewComposer(NewSprites(string(assets)), basicfont.Face7x13, logger)
	}
	return NewComposer(NewSprites(string(assets)), face, logger)
}

func (Module) Input() Input {
	return make(Input, 8)
}

// Display is the configured backend, one call at a time
func (Module) Display(
	kind drawconfigs.DisplayKind,
	composer *Composer,
	input Input,
	logger logs.Logger,
) Display {
	var display Display
	switch kind {
	case "epaper":
		display = NewEPaper(composer, logger)
	case "terminal":
		display = NewTerminal(composer, input, logger)
	case "log":
		display = NewLog(logger)
	default:
		panic(fmt.Errorf("%w: %s", ErrUnknownKind, kind))
	}
	return NewSerial(display)
}
