// nexcomm/receiver.go
package nexcomm

import (
	"bytes"

	"go.uber.org/zap"
)

const readChunk = 64

// Listen delivers everything currently buffered on the port to the callback
// as one ButtonPress event. It returns immediately when nothing is waiting.
// Call it from the host's control loop.
func (d *Display) Listen() {
	if d.port == nil || d.callback == nil {
		return
	}
	if d.port.Buffered() == 0 {
		return
	}

	var buffer bytes.Buffer
	data := make([]byte, readChunk)
	for d.port.Buffered() > 0 {
		n, err := d.port.Read(data)
		buffer.Write(data[:n])
		if err != nil {
			d.logger.Warn("read failed", zap.Error(err), zap.Int("read", buffer.Len()))
			break
		}
		if n == 0 {
			break
		}
	}
	if buffer.Len() == 0 {
		return
	}

	d.logger.Debug("event received",
		zap.Stringer("type", ButtonPress),
		zap.ByteString("data", buffer.Bytes()))
	d.callback(ButtonPress, buffer.String())
}
