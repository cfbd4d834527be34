// Copyright 2013 Google Inc. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the settings of the demo programs from TOML.
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	launchpad "github.com/rakyll/launchpad-pro"
	"github.com/rakyll/launchpad-pro/port"
	"github.com/rakyll/launchpad-pro/scroll"
	"github.com/rakyll/launchpad-pro/sysex"
)

// Drivers.
const (
	DriverPortMIDI = "portmidi"
	DriverRtMIDI   = "rtmidi"
	DriverPreview  = "preview"
)

// Config is the top level of a configuration file.
type Config struct {
	Driver   string  `toml:"driver"`
	Port     string  `toml:"port"`
	Layout   byte    `toml:"layout"`
	LogLevel string  `toml:"log_level"`
	Scroll   Scroll  `toml:"scroll"`
	Palette  Palette `toml:"palette"`
}

// Scroll holds the defaults of ScrollText.
type Scroll struct {
	DelayMS  int    `toml:"delay_ms"`
	Color    byte   `toml:"color"`
	Loop     int    `toml:"loop"`
	Preserve bool   `toml:"preserve"`
	Reveal   bool   `toml:"reveal"`
	Cycle    string `toml:"cycle"` // "all" or "none"
}

// Palette holds the palette interaction settings.
type Palette struct {
	Toggle       byte `toml:"toggle"`
	HoldMS       int  `toml:"hold_ms"`
	ValidColor   byte `toml:"valid_color"`
	InvalidColor byte `toml:"invalid_color"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Driver:   DriverPortMIDI,
		Port:     launchpad.DeviceName,
		Layout:   sysex.LayoutProgrammer,
		LogLevel: "info",
		Scroll: Scroll{
			DelayMS:  int(scroll.DefaultDelay / time.Millisecond),
			Color:    scroll.DefaultColor,
			Preserve: true,
			Cycle:    "all",
		},
		Palette: Palette{
			Toggle:       launchpad.DefaultPaletteToggle,
			HoldMS:       int(launchpad.DefaultHoldThreshold / time.Millisecond),
			ValidColor:   launchpad.DefaultValidColor,
			InvalidColor: launchpad.DefaultInvalidColor,
		},
	}
}

// Load reads path over the defaults. Keys missing from the file keep
// their default value.
func Load(path string) (Config, error) {
	c := Default()
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config: decoding %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.Errorf("config: unknown keys in %s: %v", path, undecoded)
	}
	return c, c.Validate()
}

// Validate reports settings that cannot be used.
func (c Config) Validate() error {
	switch c.Driver {
	case DriverPortMIDI, DriverRtMIDI, DriverPreview:
	default:
		return errors.Errorf("config: unknown driver %q", c.Driver)
	}
	if c.Layout > sysex.LayoutProgrammer {
		return errors.Errorf("config: unknown layout %d", c.Layout)
	}
	switch c.Scroll.Cycle {
	case "all", "none":
	default:
		return errors.Errorf("config: unknown cycle mode %q", c.Scroll.Cycle)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "config")
	}
	return nil
}

// Logger returns a logger at the configured level.
func (c Config) Logger() *logrus.Logger {
	log := logrus.New()
	if level, err := logrus.ParseLevel(c.LogLevel); err == nil {
		log.SetLevel(level)
	}
	return log
}

// ScrollOptions converts the scroll section.
func (c Config) ScrollOptions() scroll.Options {
	cycle := scroll.CycleAll
	if c.Scroll.Cycle == "none" {
		cycle = scroll.CycleNone
	}
	return scroll.Options{
		Delay:           time.Duration(c.Scroll.DelayMS) * time.Millisecond,
		Color:           c.Scroll.Color,
		Cycle:           cycle,
		Loop:            c.Scroll.Loop,
		PreserveContent: c.Scroll.Preserve,
		RevealContent:   c.Scroll.Reveal,
	}
}

// Options returns the controller options the configuration implies.
func (c Config) Options(log logrus.FieldLogger) []launchpad.Option {
	return []launchpad.Option{
		launchpad.WithLogger(log),
		launchpad.WithLayout(c.Layout),
		launchpad.WithPaletteToggle(c.Palette.Toggle),
		launchpad.WithHoldThreshold(time.Duration(c.Palette.HoldMS) * time.Millisecond),
		launchpad.WithColors(c.Palette.ValidColor, c.Palette.InvalidColor),
	}
}

// OpenPort opens the configured transport. Read errors of the
// portmidi transport are reported to log.
func (c Config) OpenPort(log logrus.FieldLogger) (port.Port, error) {
	switch c.Driver {
	case DriverPortMIDI:
		p, err := port.OpenPortMIDI(c.Port, log)
		if err != nil {
			return nil, err
		}
		return p, nil
	case DriverRtMIDI:
		p, err := port.OpenGoMIDI(c.Port)
		if err != nil {
			return nil, err
		}
		return p, nil
	case DriverPreview:
		return port.NewPreview(os.Stdout), nil
	}
	return nil, errors.Errorf("config: unknown driver %q", c.Driver)
}
