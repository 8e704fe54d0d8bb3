// nexcomm/sender.go
package nexcomm

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"
)

// Nothing is read back after a command; the panel does not acknowledge
// them in its default mode.

func (d *Display) write(data []byte) error {
	if d.port == nil {
		return ErrNotSetup
	}
	if _, err := d.port.Write(data); err != nil {
		return fmt.Errorf("write %q: %w", data, err)
	}
	return nil
}

// Finish writes the 0xFF 0xFF 0xFF terminator that closes a command.
func (d *Display) Finish() error {
	return d.write(terminator)
}

// SendCommand writes cmd followed by the terminator.
func (d *Display) SendCommand(cmd string) error {
	if err := d.write([]byte(cmd)); err != nil {
		return err
	}
	d.logger.Debug("command sent", zap.String("cmd", cmd))
	return d.Finish()
}

func (d *Display) setVariable(name, value string) error {
	return d.SendCommand(name + ".val=" + value)
}

func (d *Display) SetVariableUint8(name string, value uint8) error {
	return d.setVariable(name, strconv.FormatUint(uint64(value), 10))
}

func (d *Display) SetVariableUint16(name string, value uint16) error {
	return d.setVariable(name, strconv.FormatUint(uint64(value), 10))
}

func (d *Display) SetVariableInt(name string, value int) error {
	return d.setVariable(name, strconv.Itoa(value))
}

func (d *Display) SetVariableFloat(name string, value float64) error {
	return d.setVariable(name, formatFloat(value))
}

// SetVariableString writes value verbatim, without quoting.
func (d *Display) SetVariableString(name, value string) error {
	return d.setVariable(name, value)
}

// AddDataWaveform appends value to channel of waveform component id.
func (d *Display) AddDataWaveform(id, channel, value uint8) error {
	return d.SendCommand(fmt.Sprintf("add %d,%d,%d", id, channel, value))
}

// SetBaud asks the panel to switch to rate, then switches the local port
// if the transport supports it.
func (d *Display) SetBaud(rate int) error {
	if !ValidBaud(rate) {
		return fmt.Errorf("%w: %d", ErrBadBaud, rate)
	}
	if err := d.SendCommand("baud=" + strconv.Itoa(rate)); err != nil {
		return err
	}

	bs, ok := d.port.(BaudSetter)
	if !ok {
		d.logger.Warn("transport cannot change baud, local side unchanged",
			zap.Int("baud", rate))
		return nil
	}
	if err := bs.SetBaud(rate); err != nil {
		return fmt.Errorf("switch local baud to %d: %w", rate, err)
	}
	d.config.BaudRate = rate
	d.logger.Info("baud changed", zap.Int("baud", rate))
	return nil
}
