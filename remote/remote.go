package remote

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"tickwork/core"
)

// EndOfText terminates a command line
const EndOfText = '\n'

// ErrChecksum is returned when a line carries a checksum suffix that
// does not match its content
var ErrChecksum = errors.New("remote: checksum mismatch")

// Remote polls a serial port for command lines and dispatches them.
// Reads accumulate in a caller-sized buffer; a line is complete at a
// newline or when the buffer fills. A line may carry a trailing
// "*XXXX" hex checksum over the bytes before the '*'.
type Remote struct {
	registry *Registry
	port     io.Reader
	echo     io.Writer
	buf      []byte
	n        int
}

// NewRemote returns a poller reading from port. bufSize bounds the
// longest accepted line.
func NewRemote(registry *Registry, port io.Reader, bufSize int) *Remote {
	return &Remote{
		registry: registry,
		port:     port,
		buf:      make([]byte, bufSize),
	}
}

// SetEcho sets a writer that receives each successfully executed line
// back, terminated by a newline. Nil disables echo.
func (r *Remote) SetEcho(w io.Writer) {
	r.echo = w
}

// Poll reads available input and dispatches any complete lines. It
// returns the last dispatch or transport error; io.EOF from the port
// means no data and is not an error.
func (r *Remote) Poll() error {
	n, rerr := r.port.Read(r.buf[r.n:])
	r.n += n

	var err error
	for {
		line, rest, ok := r.takeLine()
		if !ok {
			break
		}
		if e := r.dispatch(line); e != nil {
			err = e
		}
		r.n = copy(r.buf, rest)
	}

	if rerr != nil && rerr != io.EOF {
		return rerr
	}
	return err
}

// Clock satisfies the Clockable contract. Errors go to the debug hook.
func (r *Remote) Clock() {
	if err := r.Poll(); err != nil {
		core.DebugPrintln("remote: " + err.Error())
	}
}

// takeLine returns the next complete line and the unconsumed remainder.
// A full buffer with no terminator counts as a line.
func (r *Remote) takeLine() (line, rest []byte, ok bool) {
	for i := 0; i < r.n; i++ {
		if r.buf[i] == EndOfText {
			return r.buf[:i], r.buf[i+1 : r.n], true
		}
	}
	if r.n == len(r.buf) {
		return r.buf[:r.n], nil, true
	}
	return nil, nil, false
}

func (r *Remote) dispatch(line []byte) error {
	text, err := checkLine(line)
	if err != nil {
		return err
	}
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil
	}
	if err := r.registry.Dispatch(fields); err != nil {
		return err
	}
	if r.echo != nil {
		r.echo.Write(append([]byte(text), EndOfText))
	}
	return nil
}

// checkLine strips a trailing carriage return and verifies an optional
// "*XXXX" checksum suffix, returning the payload text.
func checkLine(line []byte) (string, error) {
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
	}
	star := -1
	for i := len(line) - 1; i >= 0; i-- {
		if line[i] == '*' {
			star = i
			break
		}
	}
	if star < 0 {
		return string(line), nil
	}
	want, err := strconv.ParseUint(string(line[star+1:]), 16, 16)
	if err != nil {
		return "", ErrChecksum
	}
	if CRC16(line[:star]) != uint16(want) {
		return "", ErrChecksum
	}
	return string(line[:star]), nil
}
