package displays

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/reusee/catdraw/logs"
	"github.com/reusee/catdraw/texts"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Composer draws a frame: the sprite at the origin, text from the top-left
type Composer struct {
	sprites *Sprites
	face    font.Face
	logger  logs.Logger
}

func NewComposer(sprites *Sprites, face font.Face, logger logs.Logger) *Composer {
	return &Composer{
		sprites: sprites,
		face:    face,
		logger:  logger,
	}
}

func (c *Composer) Compose(frame Frame) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, Width, Height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	sprite, err := c.sprites.Load(frame.Sprite)
	if err != nil {
		c.logger.Debug("sprite", "error", err)
		placeholder(img, frame.Sprite)
	} else {
		draw.Draw(img, sprite.Bounds().Sub(sprite.Bounds().Min), sprite, sprite.Bounds().Min, draw.Src)
	}

	metrics := c.face.Metrics()
	y := metrics.Ascent
	for _, line := range texts.Lines(frame.Text, frame.HalfScreen) {
		drawer := font.Drawer{
			Dst:  img,
			Src:  image.Black,
			Face: c.face,
			Dot:  fixed.Point26_6{X: 0, Y: y},
		}
		drawer.DrawString(line)
		y += metrics.Height
	}

	return img
}

// placeholder marks a missing sprite with its name in the bottom-left corner
func placeholder(img *image.Gray, name string) {
	drawer := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Gray{Y: 0}),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(2, Height-4),
	}
	drawer.DrawString("[" + name + "]")
}

// Portrait rotates a landscape frame to the panel's native orientation
func Portrait(src *image.Gray) *image.Gray {
	b := src.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dy(), b.Dx()))
	for y := 0; y < b.Dx(); y++ {
		for x := 0; x < b.Dy(); x++ {
			dst.SetGray(x, y, src.GrayAt(b.Min.X+y, b.Max.Y-1-x))
		}
	}
	return dst
}
