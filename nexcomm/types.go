package nexcomm

import "errors"

type EventType uint8

// ButtonPress is the only event the panel reports. The HMI project prints a
// short text on each button press, e.g. `print "fill"`.
const ButtonPress EventType = 1

func (t EventType) String() string {
	switch t {
	case ButtonPress:
		return "button_press"
	default:
		return "unknown"
	}
}

var (
	ErrNotSetup = errors.New("nexcomm: display not set up")
	ErrNoPort   = errors.New("nexcomm: no serial port name")
	ErrBadBaud  = errors.New("nexcomm: unsupported baud rate")
)

// baudRates are the speeds the panel accepts for its baud= command.
var baudRates = map[int]bool{
	2400: true, 4800: true, 9600: true, 19200: true, 31250: true,
	38400: true, 57600: true, 115200: true, 230400: true, 250000: true,
	256000: true, 512000: true, 921600: true,
}

func ValidBaud(rate int) bool {
	return baudRates[rate]
}
