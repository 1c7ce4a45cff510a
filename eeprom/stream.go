// Object serialization stream over byte-addressed non-volatile storage
//
// A Stream keeps an internal read/write address so that a fixed set of
// objects saved in order can be loaded back in the same order after a
// reset or power cycle. Writes compare against the stored bytes first
// and skip identical data to spare EEPROM write cycles.
package eeprom

import (
	"encoding/binary"
	"errors"
	"math"

	"tickwork/hal"
)

// ErrOutOfSpace is returned when a write would run past the device capacity
var ErrOutOfSpace = errors.New("eeprom: out of space")

// ErrValueTooLarge is returned when a length-prefixed value exceeds the
// buffer the caller provided for it
var ErrValueTooLarge = errors.New("eeprom: value larger than read buffer")

// Serializable is implemented by objects that persist themselves on a
// Stream. Save and Load must touch the same fields in the same order.
type Serializable interface {
	Save(s *Stream) error
	Load(s *Stream) error
}

// Stream serializes scalars, strings and Serializable objects to and
// from an EEPROM device, advancing an internal address cursor.
type Stream struct {
	dev  hal.EEPROMDevice
	addr int64
}

// NewStream returns a stream over the given device positioned at
// address zero. A nil device selects the registered platform EEPROM.
func NewStream(dev hal.EEPROMDevice) *Stream {
	if dev == nil {
		dev = hal.MustEEPROM()
	}
	return &Stream{dev: dev}
}

// Address returns the current read/write address
func (s *Stream) Address() int64 {
	return s.addr
}

// SetAddress moves the read/write cursor
func (s *Stream) SetAddress(addr int64) {
	s.addr = addr
}

// Reset moves the read/write cursor back to address zero
func (s *Stream) Reset() {
	s.addr = 0
}

// Size returns the device capacity in bytes
func (s *Stream) Size() int64 {
	return s.dev.Size()
}

func (s *Stream) read(p []byte) error {
	if _, err := s.dev.ReadAt(p, s.addr); err != nil {
		return err
	}
	s.addr += int64(len(p))
	return nil
}

// write stores p at the cursor, skipping bytes that already match.
// Whole-buffer compare keeps the common no-change save to a single read.
func (s *Stream) write(p []byte) error {
	if s.addr+int64(len(p)) > s.dev.Size() {
		return ErrOutOfSpace
	}
	cur := make([]byte, len(p))
	if _, err := s.dev.ReadAt(cur, s.addr); err == nil && bytesEqual(cur, p) {
		s.addr += int64(len(p))
		return nil
	}
	if _, err := s.dev.WriteAt(p, s.addr); err != nil {
		return err
	}
	s.addr += int64(len(p))
	return nil
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// WriteUint8 stores one byte
func (s *Stream) WriteUint8(v uint8) error {
	return s.write([]byte{v})
}

// ReadUint8 reads one byte
func (s *Stream) ReadUint8() (uint8, error) {
	var b [1]byte
	err := s.read(b[:])
	return b[0], err
}

// WriteUint16 stores a little-endian 16-bit value
func (s *Stream) WriteUint16(v uint16) error {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	return s.write(b[:])
}

// ReadUint16 reads a little-endian 16-bit value
func (s *Stream) ReadUint16() (uint16, error) {
	var b [2]byte
	err := s.read(b[:])
	return binary.LittleEndian.Uint16(b[:]), err
}

// WriteUint32 stores a little-endian 32-bit value
func (s *Stream) WriteUint32(v uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return s.write(b[:])
}

// ReadUint32 reads a little-endian 32-bit value
func (s *Stream) ReadUint32() (uint32, error) {
	var b [4]byte
	err := s.read(b[:])
	return binary.LittleEndian.Uint32(b[:]), err
}

// WriteInt32 stores a little-endian signed 32-bit value
func (s *Stream) WriteInt32(v int32) error {
	return s.WriteUint32(uint32(v))
}

// ReadInt32 reads a little-endian signed 32-bit value
func (s *Stream) ReadInt32() (int32, error) {
	v, err := s.ReadUint32()
	return int32(v), err
}

// WriteBool stores a boolean as one byte
func (s *Stream) WriteBool(v bool) error {
	if v {
		return s.WriteUint8(1)
	}
	return s.WriteUint8(0)
}

// ReadBool reads a boolean; any nonzero byte is true
func (s *Stream) ReadBool() (bool, error) {
	b, err := s.ReadUint8()
	return b != 0, err
}

// WriteFloat32 stores an IEEE 754 value in little-endian byte order
func (s *Stream) WriteFloat32(v float32) error {
	return s.WriteUint32(math.Float32bits(v))
}

// ReadFloat32 reads an IEEE 754 little-endian value
func (s *Stream) ReadFloat32() (float32, error) {
	v, err := s.ReadUint32()
	return math.Float32frombits(v), err
}

// WriteBytes stores a VLQ length prefix followed by the raw bytes
func (s *Stream) WriteBytes(p []byte) error {
	var hdr [maxVLQLen]byte
	if err := s.write(AppendVLQUint(hdr[:0], uint32(len(p)))); err != nil {
		return err
	}
	if len(p) == 0 {
		return nil
	}
	return s.write(p)
}

// ReadBytes reads a length-prefixed value into buf and returns the
// filled prefix. Values longer than buf return ErrValueTooLarge with
// the cursor left just past the length prefix.
func (s *Stream) ReadBytes(buf []byte) ([]byte, error) {
	n, err := s.readLength()
	if err != nil {
		return nil, err
	}
	if n > len(buf) {
		return nil, ErrValueTooLarge
	}
	if n == 0 {
		return buf[:0], nil
	}
	if err := s.read(buf[:n]); err != nil {
		return nil, err
	}
	return buf[:n], nil
}

// WriteString stores a VLQ length prefix followed by the string bytes
func (s *Stream) WriteString(v string) error {
	return s.WriteBytes([]byte(v))
}

// ReadString reads a length-prefixed string of at most max bytes
func (s *Stream) ReadString(max int) (string, error) {
	buf := make([]byte, max)
	b, err := s.ReadBytes(buf)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// readLength decodes a VLQ length at the cursor one byte at a time
func (s *Stream) readLength() (int, error) {
	var enc [maxVLQLen]byte
	for i := range enc {
		var b [1]byte
		if _, err := s.dev.ReadAt(b[:], s.addr+int64(i)); err != nil {
			return 0, err
		}
		enc[i] = b[0]
		if b[0]&0x80 == 0 {
			v, n, err := DecodeVLQUint(enc[: i+1 : i+1])
			if err != nil {
				return 0, err
			}
			s.addr += int64(n)
			return int(v), nil
		}
	}
	return 0, ErrInvalidVLQ
}

// Store serializes the given objects in order at the cursor
func (s *Stream) Store(objs ...Serializable) error {
	for _, o := range objs {
		if err := o.Save(s); err != nil {
			return err
		}
	}
	return nil
}

// Load deserializes the given objects in order from the cursor. The
// order must match the Store that produced the data.
func (s *Stream) Load(objs ...Serializable) error {
	for _, o := range objs {
		if err := o.Load(s); err != nil {
			return err
		}
	}
	return nil
}
