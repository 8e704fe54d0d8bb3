package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"nexcomm/nexcomm"
)

const pollInterval = 10 * time.Millisecond

var (
	configPath string
	portName   string
	baudRate   int

	rootCmd = &cobra.Command{
		Use:          "receive",
		Short:        "Print button presses reported by a Nextion display",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx)
		},
	}
)

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to display config YAML")
	rootCmd.Flags().StringVarP(&portName, "port", "p", "", "Serial port, e.g. /dev/ttyUSB0 or COM7")
	rootCmd.Flags().IntVarP(&baudRate, "baud", "b", 0, "Baud rate (default 9600)")
}

func run(ctx context.Context) error {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer logger.Sync()

	cfg := &nexcomm.Config{}
	if configPath != "" {
		if cfg, err = nexcomm.LoadConfig(configPath); err != nil {
			return err
		}
	}
	if portName != "" {
		cfg.PortName = portName
	}
	if baudRate != 0 {
		cfg.BaudRate = baudRate
	}
	cfg.Logger = logger

	display := nexcomm.NewDisplay(cfg)
	err = display.Setup(func(eventType nexcomm.EventType, data string) {
		logger.Info("event",
			zap.Stringer("type", eventType),
			zap.String("data", data))
	})
	if err != nil {
		return err
	}
	defer display.Close()

	logger.Info("listening, Ctrl+C to exit", zap.String("port", cfg.PortName))

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			logger.Info("stopped")
			return nil
		case <-ticker.C:
			display.Listen()
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("receive failed: %v", err)
		os.Exit(1)
	}
}
