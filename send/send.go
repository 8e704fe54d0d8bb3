package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"nexcomm/nexcomm"
)

var (
	configPath string
	portName   string
	baudRate   int

	rootCmd = &cobra.Command{
		Use:          "send",
		Short:        "Send commands to a Nextion display",
		SilenceUsage: true,
	}

	varCmd = &cobra.Command{
		Use:   "var <name> <value>",
		Short: "Set <name>.val; the value is sent as an int, float or text",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDisplay(func(d *nexcomm.Display) error {
				return setVariable(d, args[0], args[1])
			})
		},
	}

	waveCmd = &cobra.Command{
		Use:   "wave <id> <channel> <value>",
		Short: "Add a data point to a waveform channel",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var vals [3]uint8
			for i, a := range args {
				v, err := strconv.ParseUint(a, 10, 8)
				if err != nil {
					return fmt.Errorf("argument %d: %w", i+1, err)
				}
				vals[i] = uint8(v)
			}
			return withDisplay(func(d *nexcomm.Display) error {
				return d.AddDataWaveform(vals[0], vals[1], vals[2])
			})
		},
	}

	baudCmd = &cobra.Command{
		Use:   "baud <rate>",
		Short: "Switch the display to another baud rate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rate, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			return withDisplay(func(d *nexcomm.Display) error {
				return d.SetBaud(rate)
			})
		},
	}

	rawCmd = &cobra.Command{
		Use:   "raw <command>",
		Short: "Send a raw command, e.g. \"page 1\"",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDisplay(func(d *nexcomm.Display) error {
				return d.SendCommand(args[0])
			})
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to display config YAML")
	rootCmd.PersistentFlags().StringVarP(&portName, "port", "p", "", "Serial port, e.g. /dev/ttyUSB0 or COM6")
	rootCmd.PersistentFlags().IntVarP(&baudRate, "baud", "b", 0, "Baud rate (default 9600)")
	rootCmd.AddCommand(varCmd, waveCmd, baudCmd, rawCmd)
}

// setVariable picks the narrowest type raw parses as.
func setVariable(d *nexcomm.Display, name, raw string) error {
	if v, err := strconv.Atoi(raw); err == nil {
		return d.SetVariableInt(name, v)
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		return d.SetVariableFloat(name, v)
	}
	return d.SetVariableString(name, raw)
}

func withDisplay(fn func(d *nexcomm.Display) error) error {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer logger.Sync()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.Logger = logger

	display := nexcomm.NewDisplay(cfg)
	if err := display.Setup(nil); err != nil {
		return err
	}
	defer display.Close()

	return fn(display)
}

func loadConfig() (*nexcomm.Config, error) {
	cfg := &nexcomm.Config{}
	if configPath != "" {
		loaded, err := nexcomm.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if portName != "" {
		cfg.PortName = portName
	}
	if baudRate != 0 {
		cfg.BaudRate = baudRate
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("send failed: %v", err)
		os.Exit(1)
	}
}
