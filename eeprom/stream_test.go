package eeprom

import (
	"testing"

	"tickwork/hal"
)

// countingEEPROM wraps the in-memory device and counts physical writes
type countingEEPROM struct {
	*hal.MemEEPROM
	writes int
}

func (c *countingEEPROM) WriteAt(p []byte, off int64) (int, error) {
	c.writes++
	return c.MemEEPROM.WriteAt(p, off)
}

type settings struct {
	Mode       uint8
	Brightness uint16
	Offset     int32
	Enabled    bool
	Gain       float32
	Name       string
}

func (c *settings) Save(s *Stream) error {
	if err := s.WriteUint8(c.Mode); err != nil {
		return err
	}
	if err := s.WriteUint16(c.Brightness); err != nil {
		return err
	}
	if err := s.WriteInt32(c.Offset); err != nil {
		return err
	}
	if err := s.WriteBool(c.Enabled); err != nil {
		return err
	}
	if err := s.WriteFloat32(c.Gain); err != nil {
		return err
	}
	return s.WriteString(c.Name)
}

func (c *settings) Load(s *Stream) error {
	var err error
	if c.Mode, err = s.ReadUint8(); err != nil {
		return err
	}
	if c.Brightness, err = s.ReadUint16(); err != nil {
		return err
	}
	if c.Offset, err = s.ReadInt32(); err != nil {
		return err
	}
	if c.Enabled, err = s.ReadBool(); err != nil {
		return err
	}
	if c.Gain, err = s.ReadFloat32(); err != nil {
		return err
	}
	c.Name, err = s.ReadString(32)
	return err
}

func TestStreamScalars(t *testing.T) {
	s := NewStream(hal.NewMemEEPROM(64))

	if err := s.WriteUint32(0xDEADBEEF); err != nil {
		t.Fatalf("WriteUint32: %v", err)
	}
	if err := s.WriteUint16(0x1234); err != nil {
		t.Fatalf("WriteUint16: %v", err)
	}
	if s.Address() != 6 {
		t.Errorf("address after writes = %d, want 6", s.Address())
	}

	s.Reset()
	if v, _ := s.ReadUint32(); v != 0xDEADBEEF {
		t.Errorf("ReadUint32 = %#x, want 0xDEADBEEF", v)
	}
	if v, _ := s.ReadUint16(); v != 0x1234 {
		t.Errorf("ReadUint16 = %#x, want 0x1234", v)
	}
}

func TestStreamLittleEndianLayout(t *testing.T) {
	dev := hal.NewMemEEPROM(16)
	s := NewStream(dev)

	if err := s.WriteUint16(0xA1B2); err != nil {
		t.Fatalf("WriteUint16: %v", err)
	}
	var raw [2]byte
	dev.ReadAt(raw[:], 0)
	if raw[0] != 0xB2 || raw[1] != 0xA1 {
		t.Errorf("stored bytes = % x, want b2 a1", raw)
	}
}

func TestStreamStrings(t *testing.T) {
	s := NewStream(hal.NewMemEEPROM(64))

	if err := s.WriteString("keypad"); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	if err := s.WriteString(""); err != nil {
		t.Fatalf("WriteString empty: %v", err)
	}

	s.Reset()
	if v, err := s.ReadString(16); err != nil || v != "keypad" {
		t.Errorf("ReadString = %q, %v", v, err)
	}
	if v, err := s.ReadString(16); err != nil || v != "" {
		t.Errorf("ReadString empty = %q, %v", v, err)
	}
}

func TestStreamValueTooLarge(t *testing.T) {
	s := NewStream(hal.NewMemEEPROM(64))
	s.WriteString("a long stored value")
	s.Reset()

	if _, err := s.ReadString(4); err != ErrValueTooLarge {
		t.Errorf("undersized read buffer: err = %v, want ErrValueTooLarge", err)
	}
}

func TestStreamOutOfSpace(t *testing.T) {
	s := NewStream(hal.NewMemEEPROM(4))

	if err := s.WriteUint32(1); err != nil {
		t.Fatalf("write within capacity: %v", err)
	}
	if err := s.WriteUint8(1); err != ErrOutOfSpace {
		t.Errorf("write past capacity: err = %v, want ErrOutOfSpace", err)
	}
}

func TestStreamObjectRoundTrip(t *testing.T) {
	s := NewStream(hal.NewMemEEPROM(128))

	saved := settings{
		Mode:       3,
		Brightness: 800,
		Offset:     -125,
		Enabled:    true,
		Gain:       1.5,
		Name:       "bench rig",
	}
	if err := s.Store(&saved); err != nil {
		t.Fatalf("Store: %v", err)
	}

	s.Reset()
	var loaded settings
	if err := s.Load(&loaded); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded != saved {
		t.Errorf("loaded = %+v, want %+v", loaded, saved)
	}
}

func TestStreamSkipsUnchangedWrites(t *testing.T) {
	dev := &countingEEPROM{MemEEPROM: hal.NewMemEEPROM(128)}
	s := NewStream(dev)

	cfg := settings{Mode: 1, Name: "x"}
	if err := s.Store(&cfg); err != nil {
		t.Fatalf("Store: %v", err)
	}
	first := dev.writes
	if first == 0 {
		t.Fatal("initial store wrote nothing")
	}

	// Same data again: every write compares equal and is skipped.
	s.Reset()
	if err := s.Store(&cfg); err != nil {
		t.Fatalf("re-Store: %v", err)
	}
	if dev.writes != first {
		t.Errorf("unchanged store hit the device %d times", dev.writes-first)
	}

	// One changed field writes again.
	cfg.Mode = 2
	s.Reset()
	if err := s.Store(&cfg); err != nil {
		t.Fatalf("Store changed: %v", err)
	}
	if dev.writes == first {
		t.Error("changed field was not written")
	}
}

func TestStreamSetAddress(t *testing.T) {
	s := NewStream(hal.NewMemEEPROM(64))

	s.SetAddress(16)
	s.WriteUint8(0x42)
	s.SetAddress(16)
	if v, _ := s.ReadUint8(); v != 0x42 {
		t.Errorf("read back = %#x, want 0x42", v)
	}
	if s.Address() != 17 {
		t.Errorf("address = %d, want 17", s.Address())
	}
}
