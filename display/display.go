// Character display manager
// Owns what is shown on a small character LCD: a Screen describes the
// layout, a provider callback supplies the row text, and the manager
// pushes changes to the device when serviced through the scheduling
// contracts. Only dirty state is flushed, so idle refresh ticks are free.
package display

import "tickwork/core"

// Device is the character display hardware the manager draws to
type Device interface {
	Clear() error
	SetCursor(col, row uint8) error
	Print(p []byte) error
	CursorOn(on bool) error
	CursorBlink(on bool) error
	DisplayOn(on bool) error
}

// Field addresses one editable position on a screen
type Field struct {
	Col uint8
	Row uint8
}

// Screen is an immutable display layout: a label, the editable fields in
// tab order and one text template per display row.
type Screen struct {
	label  string
	fields []Field
	rows   []string
}

// NewScreen returns a screen over the given fields and row templates
func NewScreen(label string, fields []Field, rows []string) *Screen {
	return &Screen{label: label, fields: fields, rows: rows}
}

// Label returns the screen's identifying label
func (s *Screen) Label() string {
	return s.label
}

// Fields returns the editable fields in tab order
func (s *Screen) Fields() []Field {
	return s.fields
}

// Rows returns the row templates
func (s *Screen) Rows() []string {
	return s.rows
}

// Cursor enumerates the display cursor modes
type Cursor uint8

const (
	// CursorNormal hides the cursor (normal operation)
	CursorNormal Cursor = iota
	// CursorBlock shows a steady cursor at the current field
	CursorBlock
	// CursorEdit blinks the cursor at the current field (editing)
	CursorEdit
)

// Provider supplies the rendered row text for a screen on refresh
type Provider func(*Screen) []string

// update events, encoded as a bitfield
const (
	updateCursor uint8 = 1 << iota
	updatePrint
	updateClear
)

// BlinkInterval is the edit-mode cursor blink period in ticks
const BlinkInterval core.Ticks = 500

// Display manages one character display device
type Display struct {
	dev        Device
	provider   Provider
	screen     *Screen
	cursor     Cursor
	field      int
	blinkTimer core.IntervalTimer
	blinkOn    bool
	events     uint8
	err        error // last device error, sticky until read
}

// NewDisplay returns a manager over the given device. The initial screen
// may be nil; nothing is drawn until one is set.
func NewDisplay(dev Device, provider Provider, screen *Screen) *Display {
	d := &Display{dev: dev, provider: provider, screen: screen}
	if screen != nil {
		d.events = updateClear | updatePrint | updateCursor
	}
	return d
}

// Screen returns the current screen
func (d *Display) Screen() *Screen {
	return d.screen
}

// SetScreen switches layouts; the display is cleared and repainted on
// the next refresh.
func (d *Display) SetScreen(screen *Screen) {
	d.screen = screen
	d.field = 0
	d.events |= updateClear | updatePrint | updateCursor
}

// Cursor returns the current cursor mode
func (d *Display) Cursor() Cursor {
	return d.cursor
}

// SetCursor sets the cursor mode
func (d *Display) SetCursor(cursor Cursor) {
	if d.cursor == cursor {
		return
	}
	d.cursor = cursor
	if cursor == CursorEdit {
		d.blinkTimer.StartWith(BlinkInterval)
		d.blinkOn = true
	} else {
		d.blinkTimer.Stop()
	}
	d.events |= updateCursor
}

// Field returns the field the cursor is on, or nil without a screen
func (d *Display) Field() *Field {
	if d.screen == nil || len(d.screen.fields) == 0 {
		return nil
	}
	return &d.screen.fields[d.field]
}

// NextField moves the cursor to the next field, wrapping at the end
func (d *Display) NextField() {
	if d.screen == nil || len(d.screen.fields) == 0 {
		return
	}
	d.field++
	if d.field == len(d.screen.fields) {
		d.field = 0
	}
	d.events |= updateCursor
}

// PrevField moves the cursor to the previous field, wrapping at the start
func (d *Display) PrevField() {
	if d.screen == nil || len(d.screen.fields) == 0 {
		return
	}
	if d.field == 0 {
		d.field = len(d.screen.fields)
	}
	d.field--
	d.events |= updateCursor
}

// Touch marks the screen content dirty so the next refresh repaints it
func (d *Display) Touch() {
	d.events |= updatePrint
}

// Err returns and clears the last device error
func (d *Display) Err() error {
	err := d.err
	d.err = nil
	return err
}

// Refresh flushes pending updates to the device
func (d *Display) Refresh() {
	if d.screen == nil || d.events == 0 {
		return
	}
	if d.events&updateClear != 0 {
		d.check(d.dev.Clear())
	}
	if d.events&updatePrint != 0 && d.provider != nil {
		rows := d.provider(d.screen)
		for i, row := range rows {
			d.check(d.dev.SetCursor(0, uint8(i)))
			d.check(d.dev.Print([]byte(row)))
		}
	}
	if d.events&updateCursor != 0 {
		d.flushCursor()
	}
	d.events = 0
}

// Clock services the display, satisfying the Clockable contract.
// Edit mode toggles the cursor blink on its own timer; everything else
// only touches the device when marked dirty.
func (d *Display) Clock() {
	if d.cursor == CursorEdit && d.blinkTimer.Expired() {
		d.blinkTimer.Reset()
		d.blinkOn = !d.blinkOn
		d.check(d.dev.CursorBlink(d.blinkOn))
	}
	d.Refresh()
}

func (d *Display) flushCursor() {
	if f := d.Field(); f != nil {
		d.check(d.dev.SetCursor(f.Col, f.Row))
	}
	switch d.cursor {
	case CursorNormal:
		d.check(d.dev.CursorOn(false))
		d.check(d.dev.CursorBlink(false))
	case CursorBlock:
		d.check(d.dev.CursorOn(true))
		d.check(d.dev.CursorBlink(false))
	case CursorEdit:
		d.check(d.dev.CursorOn(true))
		d.check(d.dev.CursorBlink(d.blinkOn))
	}
}

// check keeps the first device error until the owner reads it
func (d *Display) check(err error) {
	if err != nil && d.err == nil {
		d.err = err
	}
}
