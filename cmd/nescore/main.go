// Command nescore drives the cycle-accurate 6502 core against an iNES
// cartridge image. It is a thin harness: the interesting behavior lives
// in package nes, this just wires a cobra CLI and viper configuration
// around it.
package main

import (
	"fmt"
	"os"

	"github.com/n-ulricksen/nes-emulator/internal/config"
	"github.com/n-ulricksen/nes-emulator/nes"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var logger = logrus.New()

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "nescore",
		Short: "cycle-accurate 6502 core for NROM cartridges",
	}

	root.PersistentFlags().String("rom", "", "path to an iNES (.nes) cartridge image")
	root.PersistentFlags().String("log-level", "warn", "logrus level: debug, info, warn, error")
	root.PersistentFlags().Bool("trace", false, "emit a per-instruction trace")
	root.PersistentFlags().String("trace-output", "", "file to write the trace to (default stdout)")
	root.PersistentFlags().String("dma-align", "", "override OAM DMA alignment: align, noalign")

	root.AddCommand(newRunCmd(), newInspectCmd())
	return root
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, errors.Wrap(err, "loading configuration")
	}
	if cfg.ROMPath == "" {
		return nil, errors.New("--rom is required")
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid --log-level %q", cfg.LogLevel)
	}
	logger.SetLevel(level)
	return cfg, nil
}

func loadCartridge(path string) (*nes.Cartridge, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	cart, err := nes.LoadCartridge(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	return cart, nil
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "load a cartridge and print the parsed Cartridge value (%+v, raw PRG/CHR bytes included; no header summary)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			cart, err := loadCartridge(cfg.ROMPath)
			if err != nil {
				return err
			}
			fmt.Printf("%+v\n", cart)
			return nil
		},
	}
}

func newRunCmd() *cobra.Command {
	var cycles uint64

	cmd := &cobra.Command{
		Use:   "run",
		Short: "reset the core and tick it for a fixed number of cycles",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			cart, err := loadCartridge(cfg.ROMPath)
			if err != nil {
				return err
			}

			bus := nes.NewNesBus(cart, nil)
			cpu := bus.CPU()
			cpu.Logger = logger
			switch cfg.DmaAlignForce {
			case "align":
				forced := true
				cpu.DMAAlignOverride = &forced
			case "noalign":
				forced := false
				cpu.DMAAlignOverride = &forced
			case "":
			default:
				return errors.Errorf("invalid --dma-align %q, want align or noalign", cfg.DmaAlignForce)
			}
			if cfg.Trace {
				out := os.Stdout
				if cfg.TraceOutput != "" {
					f, err := os.Create(cfg.TraceOutput)
					if err != nil {
						return errors.Wrapf(err, "creating trace output %s", cfg.TraceOutput)
					}
					defer f.Close()
					cpu.Trace = nes.NewSpewTrace(f)
				} else {
					cpu.Trace = nes.NewSpewTrace(out)
				}
			}

			cpu.Reset()
			for i := uint64(0); i < cycles; i++ {
				cpu.Tick()
			}

			fmt.Printf("PC=%04X A=%02X X=%02X Y=%02X SP=%02X P=%02X cycles=%d\n",
				cpu.Pc, cpu.A, cpu.X, cpu.Y, cpu.Sp, cpu.Status, cpu.CycleCount)
			return nil
		},
	}
	cmd.Flags().Uint64Var(&cycles, "cycles", 1_000_000, "number of CPU cycles to execute")
	return cmd
}
