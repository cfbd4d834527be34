package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	launchpad "github.com/rakyll/launchpad-pro"
	"github.com/rakyll/launchpad-pro/config"
	"github.com/rakyll/launchpad-pro/grid"
	"github.com/rakyll/launchpad-pro/sysex"
)

var (
	flagConfig = flag.String("config", "", "TOML configuration file")
	flagDriver = flag.String("driver", "", "portmidi, rtmidi or preview, overrides the configuration")
)

func main() {
	flag.Parse()

	cfg := config.Default()
	if *flagConfig != "" {
		var err error
		if cfg, err = config.Load(*flagConfig); err != nil {
			log.Fatal(err)
		}
	}
	if *flagDriver != "" {
		cfg.Driver = *flagDriver
	}
	logger := cfg.Logger()

	p, err := cfg.OpenPort(logger)
	if err != nil {
		logger.WithError(err).Fatal("error while opening connection to launchpad")
	}
	defer p.Close()

	// Turn all inner pads to bright red.
	canvas := grid.Empty()
	for row := 1; row < grid.Size-1; row++ {
		for col := 1; col < grid.Size-1; col++ {
			canvas[row][col] = 72
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	var pad *launchpad.Launchpad
	opts := append(cfg.Options(logger),
		launchpad.WithContext(ctx),
		launchpad.WithInput(p),
		launchpad.WithEventHook(func(ev sysex.Event) {
			hit, ok := ev.(sysex.NoteOn)
			if !ok || pad.Palette().Open {
				return
			}
			row, col, ok := grid.FromPadAddress(hit.Note)
			if !ok {
				return
			}
			// Paint with the selected color.
			color := pad.Palette().SelectedColor
			canvas[row][col] = grid.Cell(color)
			if err := pad.ApplyGrid(canvas); err != nil {
				logger.WithError(err).Error("error while painting")
			}
			logger.WithField("pad", hit.Note).WithField("color", color).Info("button pressed")
		}))

	pad = launchpad.New(p, append(opts, launchpad.WithGrid(canvas))...)
	if err := pad.RequestLayout(); err != nil {
		logger.WithError(err).Error("error while requesting layout")
	}

	logger.Info("press the device button to pick a color, interrupt to quit")
	if err := pad.Listen(ctx); err != nil && err != context.Canceled {
		logger.WithError(err).Fatal("error while listening")
	}
	if err := pad.AllOff(0); err != nil {
		logger.WithError(err).Error("error while clearing")
	}
}
