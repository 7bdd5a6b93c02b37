package displays

import (
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// LoadFace loads the TrueType or OpenType font at path, or the Go font when
// path is empty
func LoadFace(path string, size float64) (font.Face, error) {
	data := goregular.TTF
	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, wrap(err)
		}
		data = content
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, wrap(err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, wrap(err)
	}
	return face, nil
}
