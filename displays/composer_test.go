package displays

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/reusee/catdraw/logs"
	"github.com/reusee/catdraw/modes"
	"github.com/reusee/catdraw/states"
	"github.com/reusee/dscope"
	"golang.org/x/image/bmp"
)

// writeSprite writes a white image with a black square at its bottom-right
func writeSprite(t *testing.T, dir string, name string, encode func(*os.File, image.Image) error) {
	img := image.NewGray(image.Rect(0, 0, Width, Height))
	for y := range Height {
		for x := range Width {
			c := color.Gray{Y: 255}
			if x >= 200 && y >= 100 {
				c = color.Gray{Y: 0}
			}
			img.SetGray(x, y, c)
		}
	}
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func encodeBMP(f *os.File, img image.Image) error {
	return bmp.Encode(f, img)
}

func encodePNG(f *os.File, img image.Image) error {
	return png.Encode(f, img)
}

func blackIn(img *image.Gray, r image.Rectangle) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.GrayAt(x, y).Y < 128 {
				n++
			}
		}
	}
	return n
}

func testComposer(t *testing.T, dir string, fn func(*Composer)) {
	dscope.New(
		new(logs.Module),
		modes.ForTest(t),
	).Call(func(
		logger logs.Logger,
	) {
		face, err := LoadFace("", 32)
		if err != nil {
			t.Fatal(err)
		}
		fn(NewComposer(NewSprites(dir), face, logger))
	})
}

func TestCompose(t *testing.T) {
	dir := t.TempDir()
	writeSprite(t, dir, string(states.SitLeft)+"/1.bmp", encodeBMP)
	writeSprite(t, dir, "idle.png", encodePNG)

	testComposer(t, dir, func(composer *Composer) {
		img := composer.Compose(Frame{
			Sprite: SpriteName(states.SitLeft, 1),
			Text:   "Hi",
		})
		if img.Bounds() != image.Rect(0, 0, Width, Height) {
			t.Fatalf("got %v", img.Bounds())
		}
		square := image.Rect(200, 100, Width, Height)
		if n := blackIn(img, square); n != square.Dx()*square.Dy() {
			t.Fatalf("sprite not drawn: %d", n)
		}
		if blackIn(img, image.Rect(0, 0, 60, 40)) == 0 {
			t.Fatal("text not drawn")
		}

		img = composer.Compose(Frame{
			Sprite: IdleSprite,
		})
		if blackIn(img, square) == 0 {
			t.Fatal("png sprite not drawn")
		}
	})
}

func TestComposeLayout(t *testing.T) {
	testComposer(t, t.TempDir(), func(composer *Composer) {
		text := "Hello there friend"
		secondLine := image.Rect(0, 40, Width, 80)

		full := composer.Compose(Frame{Sprite: "none", Text: text})
		if n := blackIn(full, secondLine); n != 0 {
			t.Fatalf("second line drawn in full-screen layout: %d", n)
		}

		half := composer.Compose(Frame{Sprite: "none", Text: text, HalfScreen: true})
		if blackIn(half, secondLine) == 0 {
			t.Fatal("second line missing in half-screen layout")
		}
	})
}

func TestComposePlaceholder(t *testing.T) {
	testComposer(t, t.TempDir(), func(composer *Composer) {
		img := composer.Compose(Frame{Sprite: "cat_jump/3"})
		if blackIn(img, image.Rect(0, Height-20, Width, Height)) == 0 {
			t.Fatal("placeholder missing")
		}
	})
}

func TestSpritesCache(t *testing.T) {
	dir := t.TempDir()
	sprites := NewSprites(dir)
	if _, err := sprites.Load("idle"); err == nil {
		t.Fatal("should error")
	}
	writeSprite(t, dir, "idle.bmp", encodeBMP)
	img, err := sprites.Load("idle")
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Remove(filepath.Join(dir, "idle.bmp")); err != nil {
		t.Fatal(err)
	}
	again, err := sprites.Load("idle")
	if err != nil {
		t.Fatal(err)
	}
	if again != img {
		t.Fatal("should be cached")
	}
}

func TestDecodeImage(t *testing.T) {
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, image.NewGray(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatal(err)
	}
	if _, err := decodeImage(buf.Bytes()); err != nil {
		t.Fatal(err)
	}
	if _, err := decodeImage([]byte("GIF89a not really")); !errors.Is(err, ErrUnsupportedImage) {
		t.Fatalf("got %v", err)
	}
}

func TestLoadFace(t *testing.T) {
	face, err := LoadFace("", 16)
	if err != nil {
		t.Fatal(err)
	}
	if face.Metrics().Height <= 0 {
		t.Fatal()
	}
	if _, err := LoadFace(filepath.Join(t.TempDir(), "missing.ttf"), 16); err == nil {
		t.Fatal("should error")
	}
}

func TestPortrait(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, Width, Height))
	for i := range src.Pix {
		src.Pix[i] = 255
	}
	src.SetGray(0, 0, color.Gray{Y: 0})
	src.SetGray(Width-1, Height-1, color.Gray{Y: 0})

	dst := Portrait(src)
	if dst.Bounds() != image.Rect(0, 0, Height, Width) {
		t.Fatalf("got %v", dst.Bounds())
	}
	if dst.GrayAt(Height-1, 0).Y != 0 {
		t.Fatal("top-left should move to top-right")
	}
	if dst.GrayAt(0, Width-1).Y != 0 {
		t.Fatal("bottom-right should move to bottom-left")
	}
	if blackIn(dst, dst.Bounds()) != 2 {
		t.Fatal()
	}
}
