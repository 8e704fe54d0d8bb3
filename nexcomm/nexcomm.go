// nexcomm/nexcomm.go
package nexcomm

import (
	"io"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultBaudRate     = 9600
	DefaultReadTimeout  = 100 * time.Millisecond
	DefaultReadyTimeout = 1 * time.Second
)

// EventHandler receives inbound notifications. data is whatever bytes were
// waiting on the wire, with no framing guarantee.
type EventHandler func(eventType EventType, data string)

// Opener opens the transport described by cfg.
type Opener func(cfg *Config) (Transport, error)

type Config struct {
	PortName     string
	BaudRate     int
	ReadTimeout  time.Duration
	ReadyTimeout time.Duration
	Logger       *zap.Logger

	// Opener defaults to OpenSerial.
	Opener Opener
}

// Transport is the byte stream the display is attached to. Buffered reports
// bytes readable without blocking so Listen can poll.
type Transport interface {
	io.ReadWriteCloser

	Buffered() int
	Ready() bool
}

// BaudSetter is implemented by transports that can change speed after open.
type BaudSetter interface {
	SetBaud(rate int) error
}

func (c *Config) withDefaults() *Config {
	out := Config{}
	if c != nil {
		out = *c
	}
	if out.BaudRate == 0 {
		out.BaudRate = DefaultBaudRate
	}
	if out.ReadTimeout == 0 {
		out.ReadTimeout = DefaultReadTimeout
	}
	if out.ReadyTimeout == 0 {
		out.ReadyTimeout = DefaultReadyTimeout
	}
	if out.Logger == nil {
		out.Logger = zap.NewNop()
	}
	if out.Opener == nil {
		out.Opener = OpenSerial
	}
	return &out
}
