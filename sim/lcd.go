package sim

import (
	"github.com/rs/zerolog"
)

// logDevice is the simulated character LCD: an in-memory framebuffer
// that logs each repainted row so display activity is visible in the
// rig's output.
type logDevice struct {
	log   zerolog.Logger
	cols  uint8
	lines [][]byte
	col   uint8
	row   uint8
}

func newLogDevice(log zerolog.Logger, cols, rows uint8) *logDevice {
	lines := make([][]byte, rows)
	for i := range lines {
		lines[i] = blankRow(cols)
	}
	return &logDevice{log: log, cols: cols, lines: lines}
}

func blankRow(cols uint8) []byte {
	row := make([]byte, cols)
	for i := range row {
		row[i] = ' '
	}
	return row
}

// Row returns the current text of one framebuffer row
func (d *logDevice) Row(row uint8) string {
	if int(row) >= len(d.lines) {
		return ""
	}
	return string(d.lines[row])
}

func (d *logDevice) Clear() error {
	for i := range d.lines {
		d.lines[i] = blankRow(d.cols)
	}
	d.col, d.row = 0, 0
	return nil
}

func (d *logDevice) SetCursor(col, row uint8) error {
	d.col, d.row = col, row
	return nil
}

func (d *logDevice) Print(p []byte) error {
	if int(d.row) < len(d.lines) {
		copy(d.lines[d.row][d.col:], p)
		d.log.Debug().Uint8("row", d.row).Str("text", string(d.lines[d.row])).Msg("lcd")
	}
	d.col += uint8(len(p))
	return nil
}

func (d *logDevice) CursorOn(on bool) error {
	return nil
}

func (d *logDevice) CursorBlink(on bool) error {
	return nil
}

func (d *logDevice) DisplayOn(on bool) error {
	return nil
}
