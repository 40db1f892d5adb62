package config

import (
	"fmt"

	"gopkg.in/ini.v1"

	"github.com/evtap/evtap/gesture"
)

const (
	// DefaultDevice is the touchscreen on the hardware this tool grew up on
	DefaultDevice = "/dev/input/event2"

	// DefaultListen is the default address for the status server
	DefaultListen = "localhost:12000"
)

// Settings are daemon-level options. They come from an optional INI file and
// can be overridden per-flag on the command line.
type Settings struct {
	Device         string
	RulesPath      string
	Grab           bool
	CooldownFrames int
	Listen         string
}

func DefaultSettings() Settings {
	return Settings{
		Device:         DefaultDevice,
		CooldownFrames: gesture.DefaultCooldownFrames,
		Listen:         DefaultListen,
	}
}

// LoadSettings reads an INI settings file on top of the defaults. Keys live
// in the default section: device, rules, grab, cooldown_frames, listen.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	cfg, err := ini.Load(path)
	if err != nil {
		return settings, fmt.Errorf("failed to load settings file: %w", err)
	}

	section := cfg.Section("")
	if value := section.Key("device").String(); value != "" {
		settings.Device = value
	}
	if value := section.Key("rules").String(); value != "" {
		settings.RulesPath = value
	}
	if value := section.Key("listen").String(); value != "" {
		settings.Listen = value
	}
	settings.Grab = section.Key("grab").MustBool(settings.Grab)
	settings.CooldownFrames = section.Key("cooldown_frames").MustInt(settings.CooldownFrames)

	return settings, nil
}
