// Package console implements the host side of the serial command
// protocol: it frames outgoing command lines, optionally appending the
// CRC16 checksum suffix the firmware verifies, and collects echoed
// responses.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/google/shlex"

	"tickwork/remote"
)

// Client talks the line protocol over an open port
type Client struct {
	port     io.ReadWriter
	reader   *bufio.Reader
	checksum bool
}

// NewClient returns a client on the given port with checksums enabled
func NewClient(port io.ReadWriter) *Client {
	return &Client{
		port:     port,
		reader:   bufio.NewReader(port),
		checksum: true,
	}
}

// SetChecksum controls whether sent lines carry a "*XXXX" CRC suffix
func (c *Client) SetChecksum(on bool) {
	c.checksum = on
}

// Tokenize splits an input line into words, honoring shell-style quoting
func Tokenize(line string) ([]string, error) {
	return shlex.Split(line)
}

// Send frames and transmits one command line
func (c *Client) Send(fields []string) error {
	line := strings.Join(fields, " ")
	if c.checksum {
		line = fmt.Sprintf("%s*%04X", line, remote.CRC16([]byte(line)))
	}
	if _, err := fmt.Fprintf(c.port, "%s\n", line); err != nil {
		return fmt.Errorf("failed to send %q: %w", fields[0], err)
	}
	return nil
}

// ReadResponse reads one newline-terminated response line. Ports opened
// with a read timeout return io.EOF when the device stays quiet.
func (c *Client) ReadResponse() (string, error) {
	line, err := c.reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Run drives an interactive session: lines from in are tokenized,
// sent to the device, and any echoed response is printed to out.
// "quit" ends the session.
func (c *Client) Run(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}

		fields, err := Tokenize(scanner.Text())
		if err != nil {
			fmt.Fprintf(out, "parse error: %v\n", err)
			continue
		}
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "quit", "exit", "q":
			return nil
		default:
			if err := c.Send(fields); err != nil {
				return err
			}
			if resp, err := c.ReadResponse(); err == nil {
				fmt.Fprintln(out, resp)
			}
		}
	}
	return scanner.Err()
}
