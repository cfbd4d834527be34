package main

import (
	"flag"
	"log"
	"time"

	launchpad "github.com/rakyll/launchpad-pro"
	"github.com/rakyll/launchpad-pro/config"
	"github.com/rakyll/launchpad-pro/grid"
	"github.com/rakyll/launchpad-pro/sysex"
)

var (
	flagConfig = flag.String("config", "", "TOML configuration file")
	flagDriver = flag.String("driver", "", "portmidi, rtmidi or preview, overrides the configuration")
	flagText   = flag.String("text", "Hello World!", "text to scroll")
	flagLoop   = flag.Int("loop", -1, "extra passes, overrides the configuration")
	flagNative = flag.Bool("native", false, "use the device's own scroller")
	flagSpeed  = flag.Int("speed", 4, "native scroller speed, 1 to 7")
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
	if *flagLoop >= 0 {
		cfg.Scroll.Loop = *flagLoop
	}
	logger := cfg.Logger()

	p, err := cfg.OpenPort(logger)
	if err != nil {
		logger.WithError(err).Fatal("error while opening connection to launchpad")
	}
	defer p.Close()

	ended := make(chan struct{}, 1)
	opts := append(cfg.Options(logger),
		launchpad.WithInput(p),
		launchpad.WithScrollEnd(func() {
			select {
			case ended <- struct{}{}:
			default:
			}
		}))

	// A frame behind the text, restored when it has gone by.
	background := grid.Empty()
	for col := 1; col < grid.Size-1; col++ {
		background[grid.Size-2][col] = 21
	}
	pad := launchpad.New(p, append(opts, launchpad.WithGrid(background))...)

	if *flagNative {
		stop, err := p.Listen(func(msg []byte) { pad.HandleEvent(sysex.Decode(msg)) })
		if err != nil {
			logger.WithError(err).Fatal("error while listening")
		}
		defer stop()
		if err := pad.Text(cfg.Scroll.Color).Add(byte(*flagSpeed), *flagText).Perform(); err != nil {
			logger.WithError(err).Fatal("error while scrolling")
		}
		select {
		case <-ended:
			logger.Info("scrolling text is ended now")
		case <-time.After(time.Minute):
			logger.Warn("no end of scroll reported")
		}
		return
	}

	opt := cfg.ScrollOptions()
	d := pad.ScrollText(*flagText, opt)
	logger.WithField("duration", d).Info("scrolling")
	time.Sleep(d * time.Duration(opt.Loop+1))
	if err := pad.AllOff(0); err != nil {
		logger.WithError(err).Error("error while clearing")
	}
}
