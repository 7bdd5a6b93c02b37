package displays

import (
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/reusee/catdraw/logs"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/ssd1306/image1bit"
	"periph.io/x/devices/v3/waveshare2in13v4"
	"periph.io/x/host/v3"
)

// EPaper drives a Waveshare 2.13" V4 hat. The bus is opened on first render.
type EPaper struct {
	composer *Composer
	logger   logs.Logger

	hostOnce sync.Once
	hostErr  error

	port   spi.PortCloser
	dev    *waveshare2in13v4.Dev
	ready  bool
	halted bool
}

var _ Display = new(EPaper)

func NewEPaper(composer *Composer, logger logs.Logger) *EPaper {
	return &EPaper{
		composer: composer,
		logger:   logger,
	}
}

func (e *EPaper) open() error {
	e.hostOnce.Do(func() {
		_, e.hostErr = host.Init()
	})
	if e.hostErr != nil {
		return wrap(e.hostErr)
	}
	if e.dev != nil {
		return nil
	}
	port, err := spireg.Open("")
	if err != nil {
		return wrap(err)
	}
	opts := waveshare2in13v4.EPD2in13v4
	dev, err := waveshare2in13v4.NewHat(port, &opts)
	if err != nil {
		port.Close()
		return wrap(err)
	}
	e.port = port
	e.dev = dev
	return nil
}

func (e *EPaper) Render(frame Frame) error {
	if e.halted {
		return nil
	}
	if err := e.open(); err != nil {
		return err
	}

	if !e.ready {
		e.logger.Info("initializing display")
		if err := e.dev.Init(); err != nil {
			return wrap(err)
		}
		if err := e.dev.Clear(color.White); err != nil {
			return wrap(err)
		}
		e.ready = true
	}

	portrait := Portrait(e.composer.Compose(frame))
	img := image1bit.NewVerticalLSB(e.dev.Bounds())
	draw.Draw(img, img.Bounds(), portrait, image.Point{}, draw.Src)
	if err := e.dev.Draw(e.dev.Bounds(), img, image.Point{}); err != nil {
		return wrap(err)
	}
	return nil
}

func (e *EPaper) Freeze() error {
	if e.dev == nil || !e.ready {
		return nil
	}
	e.logger.Info("freezing display")
	e.ready = false
	if err := e.dev.Sleep(); err != nil {
		return wrap(err)
	}
	return nil
}

func (e *EPaper) Halt() error {
	if e.halted {
		return nil
	}
	e.halted = true
	if e.dev == nil {
		return nil
	}
	e.logger.Info("halting display")
	if e.ready {
		if err := e.dev.Sleep(); err != nil {
			e.logger.Warn("sleep", "error", err)
		}
		e.ready = false
	}
	if err := e.dev.Halt(); err != nil {
		e.logger.Warn("halt", "error", err)
	}
	if err := e.port.Close(); err != nil {
		return wrap(err)
	}
	return nil
}
