package core

// DebugWriter is a function type for writing diagnostic messages
type DebugWriter func(string)

var (
	// debugPrintln is the global debug print function (set by platform or host code)
	debugPrintln DebugWriter = func(string) {}

	// debugEnabled controls whether debug output is active
	// Disabled by default so scheduling paths pay no formatting cost
	debugEnabled bool
)

// SetDebugWriter sets the platform-specific debug output function.
// Targets redirect output to UART or USB; hosts to their logger.
func SetDebugWriter(writer DebugWriter) {
	if writer == nil {
		writer = func(string) {}
	}
	debugPrintln = writer
}

// SetDebugEnabled enables or disables debug output
func SetDebugEnabled(enabled bool) {
	debugEnabled = enabled
}

// DebugPrintln writes a debug message using the configured writer
func DebugPrintln(msg string) {
	if debugEnabled {
		debugPrintln(msg)
	}
}

// utoa converts an unsigned integer to a string without the fmt package,
// a lightweight alternative for embedded builds.
func utoa(n uint32) string {
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
