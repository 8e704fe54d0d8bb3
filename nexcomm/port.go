// nexcomm/port.go
package nexcomm

import (
	"errors"
	"io"
	"time"

	"github.com/tarm/serial"
)

// baudSettle is how long the panel needs after a baud= command before it
// listens at the new rate.
const baudSettle = 1 * time.Second

// serialPort adapts a tarm/serial port to Transport. tarm/serial cannot
// report how many bytes are waiting, so Buffered does one read bounded by
// ReadTimeout and keeps the result in pending.
type serialPort struct {
	port    *serial.Port
	config  serial.Config
	pending []byte
	scratch []byte
	readErr error
}

// OpenSerial opens cfg.PortName at cfg.BaudRate, 8N1.
func OpenSerial(cfg *Config) (Transport, error) {
	if cfg.PortName == "" {
		return nil, ErrNoPort
	}
	s := &serialPort{
		config: serial.Config{
			Name:        cfg.PortName,
			Baud:        cfg.BaudRate,
			Parity:      serial.ParityNone,
			ReadTimeout: cfg.ReadTimeout,
		},
		scratch: make([]byte, 256),
	}
	if err := s.open(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *serialPort) open() error {
	port, err := serial.OpenPort(&s.config)
	if err != nil {
		return err
	}
	// drop anything the panel sent before we were listening
	_ = port.Flush()
	s.port = port
	return nil
}

func (s *serialPort) fill() {
	n, err := s.port.Read(s.scratch)
	s.pending = append(s.pending, s.scratch[:n]...)
	// a timed out read surfaces as io.EOF on posix
	if err != nil && !errors.Is(err, io.EOF) {
		s.readErr = err
	}
}

func (s *serialPort) Buffered() int {
	if s.port == nil {
		return 0
	}
	if len(s.pending) == 0 && s.readErr == nil {
		s.fill()
	}
	if len(s.pending) == 0 && s.readErr != nil {
		// let the next Read report it
		return 1
	}
	return len(s.pending)
}

func (s *serialPort) Read(p []byte) (int, error) {
	if s.port == nil {
		return 0, io.ErrClosedPipe
	}
	if len(s.pending) == 0 && s.readErr == nil {
		s.fill()
	}
	if len(s.pending) == 0 {
		err := s.readErr
		s.readErr = nil
		return 0, err
	}
	n := copy(p, s.pending)
	s.pending = s.pending[n:]
	return n, nil
}

func (s *serialPort) Write(p []byte) (int, error) {
	if s.port == nil {
		return 0, io.ErrClosedPipe
	}
	return s.port.Write(p)
}

func (s *serialPort) Ready() bool {
	return s.port != nil
}

// SetBaud reopens the port at rate once the panel has had time to switch.
func (s *serialPort) SetBaud(rate int) error {
	if err := s.Close(); err != nil {
		return err
	}
	time.Sleep(baudSettle)
	s.config.Baud = rate
	return s.open()
}

func (s *serialPort) Close() error {
	if s.port == nil {
		return nil
	}
	err := s.port.Close()
	s.port = nil
	s.pending = nil
	s.readErr = nil
	return err
}
