package nexcomm

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewDisplayDefaults(t *testing.T) {
	d := NewDisplay(nil)

	assert.Equal(t, DefaultBaudRate, d.config.BaudRate)
	assert.Equal(t, DefaultReadTimeout, d.config.ReadTimeout)
	assert.Equal(t, DefaultReadyTimeout, d.config.ReadyTimeout)
	assert.NotNil(t, d.config.Opener)
}

func TestSetupPassesConfigToOpener(t *testing.T) {
	var got *Config
	d := NewDisplay(&Config{
		PortName:     "/dev/ttyACM0",
		ReadyTimeout: 10 * time.Millisecond,
		Opener: func(cfg *Config) (Transport, error) {
			got = cfg
			return &fakePort{}, nil
		},
	})

	require.NoError(t, d.Setup(nil))
	require.NotNil(t, got)
	assert.Equal(t, "/dev/ttyACM0", got.PortName)
	assert.Equal(t, 9600, got.BaudRate)
	assert.Equal(t, 100*time.Millisecond, got.ReadTimeout)
}

func TestSetupNeverReady(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	d := NewDisplay(&Config{
		PortName:     "fake",
		ReadyTimeout: 30 * time.Millisecond,
		Logger:       zap.New(core),
		Opener:       openerFor(&fakePort{notUp: true}),
	})

	start := time.Now()
	err := d.Setup(func(EventType, string) {})
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, elapsed, 30*time.Millisecond)
	assert.Less(t, elapsed, time.Second)
	assert.Equal(t, 1, logs.FilterMessage("display not ready, continuing").Len())
}

func TestSetupOpenError(t *testing.T) {
	d := NewDisplay(&Config{
		PortName: "missing",
		Opener: func(*Config) (Transport, error) {
			return nil, errors.New("no such device")
		},
	})

	err := d.Setup(func(EventType, string) {})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no such device")
}

func TestSetupDefaultOpenerNeedsPort(t *testing.T) {
	d := NewDisplay(&Config{})

	err := d.Setup(func(EventType, string) {})
	assert.ErrorIs(t, err, ErrNoPort)
}

func TestSetupReplacesCallback(t *testing.T) {
	port := &fakePort{}
	d, first := newTestDisplay(t, port, nil)

	var second []string
	require.NoError(t, d.Setup(func(_ EventType, data string) {
		second = append(second, data)
	}))

	port.in.WriteString("fill")
	d.Listen()

	assert.Empty(t, *first)
	assert.Equal(t, []string{"fill"}, second)
}

func TestClose(t *testing.T) {
	port := &fakePort{}
	d, _ := newTestDisplay(t, port, nil)

	require.NoError(t, d.Close())
	assert.True(t, port.closed)
	assert.ErrorIs(t, d.Finish(), ErrNotSetup)
	assert.NoError(t, d.Close())
}

func TestEventTypeString(t *testing.T) {
	assert.Equal(t, "button_press", ButtonPress.String())
	assert.Equal(t, "unknown", EventType(0).String())
	assert.Equal(t, EventType(1), ButtonPress)
}
