package displays

import (
	"github.com/reusee/catdraw/logs"
	"github.com/reusee/catdraw/texts"
)

// Log describes frames in the log instead of drawing them, for headless runs
type Log struct {
	logger logs.Logger
	last   Frame
}

var _ Display = new(Log)

func NewLog(logger logs.Logger) *Log {
	return &Log{
		logger: logger,
	}
}

func (l *Log) Render(frame Frame) error {
	if frame.Sprite == l.last.Sprite && frame.Text == l.last.Text {
		return nil
	}
	l.last = frame
	l.logger.Info("frame",
		"sprite", frame.Sprite,
		"lines", texts.Lines(frame.Text, frame.HalfScreen),
	)
	return nil
}

func (l *Log) Freeze() error {
	l.last = Frame{}
	l.logger.Info("freeze")
	return nil
}

func (l *Log) Halt() error {
	l.logger.Info("halt")
	return nil
}
