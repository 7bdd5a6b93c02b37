package displays

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/image/bmp"
)

var spriteExts = []string{".bmp", ".png"}

// Sprites loads and caches images from the assets dir
type Sprites struct {
	dir   string
	mu    sync.Mutex
	cache map[string]image.Image
}

func NewSprites(dir string) *Sprites {
	return &Sprites{
		dir:   dir,
		cache: make(map[string]image.Image),
	}
}

func (s *Sprites) Load(name string) (image.Image, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if img, ok := s.cache[name]; ok {
		return img, nil
	}

	for _, ext := range spriteExts {
		path := filepath.Join(s.dir, name+ext)
		content, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		} else if err != nil {
			return nil, wrap(err)
		}
		img, err := decodeImage(content)
		if err != nil {
			return nil, wrap(fmt.Errorf("%s: %w", path, err))
		}
		s.cache[name] = img
		return img, nil
	}

	return nil, wrap(fmt.Errorf("sprite %s: %w", name, fs.ErrNotExist))
}

// decodeImage sniffs the content, not the file name
func decodeImage(content []byte) (image.Image, error) {
	mime := mimetype.Detect(content)
	switch {
	case mime.Is("image/bmp"):
		return bmp.Decode(bytes.NewReader(content))
	case mime.Is("image/png"):
		return png.Decode(bytes.NewReader(content))
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedImage, mime.String())
}
