package display

// Numeric rendering helpers for row providers. A lightweight alternative
// to the fmt package for embedded builds.

// Utoa converts an unsigned integer to decimal text
func Utoa(n uint32) string {
	if n == 0 {
		return "0"
	}

	temp := n
	digits := 0
	for temp > 0 {
		digits++
		temp /= 10
	}

	buf := make([]byte, digits)
	pos := digits - 1
	for n > 0 {
		buf[pos] = byte('0' + n%10)
		n /= 10
		pos--
	}

	return string(buf)
}

// Itoa converts a signed integer to decimal text
func Itoa(n int) string {
	if n < 0 {
		return "-" + Utoa(uint32(-n))
	}
	return Utoa(uint32(n))
}

// PadLeft pads s with the given byte up to width. Text longer than width
// is returned unchanged.
func PadLeft(s string, width int, pad byte) string {
	if len(s) >= width {
		return s
	}
	buf := make([]byte, width)
	n := width - len(s)
	for i := 0; i < n; i++ {
		buf[i] = pad
	}
	copy(buf[n:], s)
	return string(buf)
}

// PadRight pads s with the given byte up to width, for fixed-width rows
func PadRight(s string, width int, pad byte) string {
	if len(s) >= width {
		return s
	}
	buf := make([]byte, width)
	copy(buf, s)
	for i := len(s); i < width; i++ {
		buf[i] = pad
	}
	return string(buf)
}
