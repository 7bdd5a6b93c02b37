package displays

import (
	"image"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/reusee/catdraw/logs"
)

// Input carries protocol lines typed into a display
type Input chan string

// terminalKeys maps keys to the lines the hardware buttons send
var terminalKeys = map[rune]string{
	'a': "Run Left!",
	'b': "Lie Down!",
	'c': "Look Up!",
	'd': "Run Right!",
	'w': "Say Wish!",
	'x': "Clear!",
}

// Terminal previews frames with half-block cells, two pixels per cell
// column and four per row. A frozen preview keeps the last frame, dimmed,
// until the next render.
type Terminal struct {
	composer *Composer
	input    Input
	logger   logs.Logger

	mu     sync.Mutex
	screen tcell.Screen
	last   *image.Gray
	frozen bool
	halted bool
}

var _ Display = new(Terminal)

func NewTerminal(composer *Composer, input Input, logger logs.Logger) *Terminal {
	return &Terminal{
		composer: composer,
		input:    input,
		logger:   logger,
	}
}

func (t *Terminal) open() (tcell.Screen, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.screen != nil {
		return t.screen, nil
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, wrap(err)
	}
	if err := screen.Init(); err != nil {
		return nil, wrap(err)
	}
	t.screen = screen
	go t.poll(screen)
	return screen, nil
}

func (t *Terminal) poll(screen tcell.Screen) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			// screen finalized
			return
		}
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		if key.Key() == tcell.KeyCtrlC || key.Key() == tcell.KeyRune && key.Rune() == 'q' {
			interrupt()
			continue
		}
		if key.Key() != tcell.KeyRune {
			continue
		}
		if line, ok := terminalKeys[key.Rune()]; ok {
			select {
			case t.input <- line:
			default:
				t.logger.Warn("input dropped", "line", line)
			}
		}
	}
}

func interrupt() {
	p, err := os.FindProcess(os.Getpid())
	if err != nil {
		return
	}
	_ = p.Signal(os.Interrupt)
}

func (t *Terminal) Render(frame Frame) error {
	if t.halted {
		return nil
	}
	screen, err := t.open()
	if err != nil {
		return err
	}
	if t.frozen {
		t.logger.Debug("waking terminal display")
		t.frozen = false
	}
	t.last = t.composer.Compose(frame)
	paint(screen, t.last, tcell.StyleDefault)
	screen.Show()
	return nil
}

func paint(screen tcell.Screen, img *image.Gray, base tcell.Style) {
	b := img.Bounds()
	for cy := 0; cy*4 < b.Dy(); cy++ {
		for cx := 0; cx*2 < b.Dx(); cx++ {
			top := ink(img, b.Min.X+cx*2, b.Min.Y+cy*4)
			bottom := ink(img, b.Min.X+cx*2, b.Min.Y+cy*4+2)
			style := base.Foreground(top).Background(bottom)
			screen.SetContent(cx, cy, '▀', nil, style)
		}
	}
}

func ink(img *image.Gray, x, y int) tcell.Color {
	if !(image.Point{x, y}).In(img.Bounds()) {
		return tcell.ColorWhite
	}
	if img.GrayAt(x, y).Y < 128 {
		return tcell.ColorBlack
	}
	return tcell.ColorWhite
}

func (t *Terminal) Freeze() error {
	if t.halted || t.frozen {
		return nil
	}
	t.frozen = true
	t.mu.Lock()
	screen := t.screen
	t.mu.Unlock()
	if screen == nil || t.last == nil {
		return nil
	}
	paint(screen, t.last, tcell.StyleDefault.Dim(true))
	screen.Show()
	return nil
}

func (t *Terminal) Halt() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.halted {
		return nil
	}
	t.halted = true
	if t.screen != nil {
		t.screen.Fini()
	}
	return nil
}
