// nexcomm/config.go
package nexcomm

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig is the YAML layout of a display config file:
//
//	port: /dev/ttyUSB0
//	baud: 9600
//	read_timeout: 100ms
//	ready_timeout: 1s
type fileConfig struct {
	Port         string        `yaml:"port"`
	Baud         int           `yaml:"baud"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	ReadyTimeout time.Duration `yaml:"ready_timeout"`
}

// LoadConfig reads and validates the YAML config at path.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return DecodeConfig(f)
}

// DecodeConfig decodes YAML from r, rejecting unknown keys, and fills in
// defaults for anything left out.
func DecodeConfig(r io.Reader) (*Config, error) {
	var fc fileConfig
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&fc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	cfg := (&Config{
		PortName:     fc.Port,
		BaudRate:     fc.Baud,
		ReadTimeout:  fc.ReadTimeout,
		ReadyTimeout: fc.ReadyTimeout,
	}).withDefaults()
	cfg.Logger = nil
	cfg.Opener = nil

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.PortName == "" {
		return ErrNoPort
	}
	if !ValidBaud(c.BaudRate) {
		return fmt.Errorf("%w: %d", ErrBadBaud, c.BaudRate)
	}
	if c.ReadTimeout < 0 || c.ReadyTimeout < 0 {
		return fmt.Errorf("invalid config: negative timeout")
	}
	return nil
}
