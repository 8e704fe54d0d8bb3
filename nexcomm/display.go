// nexcomm/display.go
package nexcomm

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

const readyPollInterval = 10 * time.Millisecond

// Display drives a single HMI panel. It is meant to be called from one
// control loop and is not safe for concurrent use.
type Display struct {
	port     Transport
	config   *Config
	callback EventHandler
	logger   *zap.Logger
}

func NewDisplay(cfg *Config) *Display {
	c := cfg.withDefaults()
	return &Display{
		config: c,
		logger: c.Logger.With(zap.String("port", c.PortName)),
	}
}

// Setup stores callback, opens the port and waits up to ReadyTimeout for it
// to come up. A port that never reports ready is logged, not returned.
func (d *Display) Setup(callback EventHandler) error {
	d.callback = callback

	if d.port == nil {
		port, err := d.config.Opener(d.config)
		if err != nil {
			return fmt.Errorf("open %q: %w", d.config.PortName, err)
		}
		d.port = port
	}

	deadline := time.Now().Add(d.config.ReadyTimeout)
	for !d.port.Ready() && time.Now().Before(deadline) {
		time.Sleep(readyPollInterval)
	}
	if !d.port.Ready() {
		d.logger.Warn("display not ready, continuing",
			zap.Duration("waited", d.config.ReadyTimeout))
		return nil
	}

	d.logger.Info("display ready",
		zap.Int("baud", d.config.BaudRate),
		zap.Duration("read_timeout", d.config.ReadTimeout))
	return nil
}

func (d *Display) Close() error {
	if d.port == nil {
		return nil
	}
	err := d.port.Close()
	d.port = nil
	return err
}
