package console

import (
	"bytes"
	"fmt"
	"testing"

	"tickwork/remote"
)

type loopPort struct {
	in  bytes.Buffer // device -> host
	out bytes.Buffer // host -> device
}

func (p *loopPort) Read(b []byte) (int, error)  { return p.in.Read(b) }
func (p *loopPort) Write(b []byte) (int, error) { return p.out.Write(b) }

func TestSendFraming(t *testing.T) {
	port := &loopPort{}
	c := NewClient(port)

	if err := c.Send([]string{"seq", "start"}); err != nil {
		t.Fatalf("Send: %v", err)
	}
	want := fmt.Sprintf("seq start*%04X\n", remote.CRC16([]byte("seq start")))
	if got := port.out.String(); got != want {
		t.Errorf("framed line = %q, want %q", got, want)
	}
}

func TestSendWithoutChecksum(t *testing.T) {
	port := &loopPort{}
	c := NewClient(port)
	c.SetChecksum(false)

	c.Send([]string{"stop"})
	if got := port.out.String(); got != "stop\n" {
		t.Errorf("framed line = %q, want %q", got, "stop\n")
	}
}

func TestSentLinesVerify(t *testing.T) {
	// A framed line must pass the firmware-side dispatcher's check.
	port := &loopPort{}
	c := NewClient(port)
	c.Send([]string{"seq", "start", "3"})

	var log []string
	reg := remote.NewRegistry()
	reg.MustRegister("seq", "", func(args []string) error {
		log = append(log, "seq")
		return nil
	})
	r := remote.NewRemote(reg, &port.out, 64)
	if err := r.Poll(); err != nil {
		t.Fatalf("firmware rejected framed line: %v", err)
	}
	if len(log) != 1 {
		t.Errorf("dispatch log = %v", log)
	}
}

func TestReadResponse(t *testing.T) {
	port := &loopPort{}
	port.in.WriteString("ok seq running\r\n")
	c := NewClient(port)

	resp, err := c.ReadResponse()
	if err != nil {
		t.Fatalf("ReadResponse: %v", err)
	}
	if resp != "ok seq running" {
		t.Errorf("response = %q", resp)
	}
}

func TestTokenize(t *testing.T) {
	fields, err := Tokenize(`lcd print "hello world"`)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(fields) != 3 || fields[2] != "hello world" {
		t.Errorf("fields = %q", fields)
	}
}
