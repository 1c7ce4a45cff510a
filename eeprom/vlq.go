package eeprom

import "errors"

var (
	// ErrInvalidVLQ is returned when a VLQ value does not terminate
	ErrInvalidVLQ = errors.New("invalid VLQ encoding")
	// ErrBufferTooSmall is returned when the input ends mid value
	ErrBufferTooSmall = errors.New("buffer too small for VLQ")
)

// maxVLQLen is the longest encoding of a 32-bit value
const maxVLQLen = 5

// AppendVLQInt appends the VLQ encoding of a signed integer to dst.
// Bytes are emitted most significant group first with the high bit
// marking continuation.
func AppendVLQInt(dst []byte, v int32) []byte {
	if !(-(1<<26) <= v && v < (3<<26)) {
		dst = append(dst, byte((v>>28)&0x7F)|0x80)
	}
	if !(-(1<<19) <= v && v < (3<<19)) {
		dst = append(dst, byte((v>>21)&0x7F)|0x80)
	}
	if !(-(1<<12) <= v && v < (3<<12)) {
		dst = append(dst, byte((v>>14)&0x7F)|0x80)
	}
	if !(-(1<<5) <= v && v < (3<<5)) {
		dst = append(dst, byte((v>>7)&0x7F)|0x80)
	}
	return append(dst, byte(v&0x7F))
}

// AppendVLQUint appends the VLQ encoding of an unsigned integer to dst
func AppendVLQUint(dst []byte, v uint32) []byte {
	return AppendVLQInt(dst, int32(v))
}

// DecodeVLQInt decodes a VLQ signed integer from data, returning the
// value and the number of bytes consumed.
func DecodeVLQInt(data []byte) (int32, int, error) {
	if len(data) == 0 {
		return 0, 0, ErrBufferTooSmall
	}

	c := uint32(data[0])
	n := 1
	v := c & 0x7F
	if (c & 0x60) == 0x60 {
		v |= ^uint32(0x1F) // sign extend
	}

	for c&0x80 != 0 {
		if n >= len(data) {
			return 0, n, ErrBufferTooSmall
		}
		if n >= maxVLQLen {
			return 0, n, ErrInvalidVLQ
		}
		c = uint32(data[n])
		n++
		v = (v << 7) | (c & 0x7F)
	}
	return int32(v), n, nil
}

// DecodeVLQUint decodes a VLQ unsigned integer from data
func DecodeVLQUint(data []byte) (uint32, int, error) {
	v, n, err := DecodeVLQInt(data)
	return uint32(v), n, err
}
