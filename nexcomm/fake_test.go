package nexcomm

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePort struct {
	in      bytes.Buffer
	out     bytes.Buffer
	notUp   bool
	readErr error
	baud    int
	closed  bool
}

func (f *fakePort) Read(p []byte) (int, error) {
	if f.readErr != nil {
		n, _ := f.in.Read(p)
		return n, f.readErr
	}
	if f.in.Len() == 0 {
		return 0, io.EOF
	}
	return f.in.Read(p)
}

func (f *fakePort) Write(p []byte) (int, error) { return f.out.Write(p) }
func (f *fakePort) Close() error                { f.closed = true; return nil }
func (f *fakePort) Buffered() int               { return f.in.Len() }
func (f *fakePort) Ready() bool                 { return !f.notUp }

type baudPort struct {
	fakePort
}

func (b *baudPort) SetBaud(rate int) error {
	b.baud = rate
	return nil
}

func openerFor(t Transport) Opener {
	return func(*Config) (Transport, error) { return t, nil }
}

type event struct {
	kind EventType
	data string
}

// newTestDisplay returns a set-up display on port and the slice that
// collects its events.
func newTestDisplay(t *testing.T, port Transport, logger *zap.Logger) (*Display, *[]event) {
	t.Helper()
	events := &[]event{}
	d := NewDisplay(&Config{
		PortName:     "fake",
		ReadyTimeout: 20 * time.Millisecond,
		Logger:       logger,
		Opener:       openerFor(port),
	})
	err := d.Setup(func(kind EventType, data string) {
		*events = append(*events, event{kind, data})
	})
	require.NoError(t, err)
	return d, events
}

func frame(cmd string) []byte {
	return append([]byte(cmd), 0xff, 0xff, 0xff)
}
