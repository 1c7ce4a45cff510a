package sim

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	yaml "go.yaml.in/yaml/v3"

	"tickwork/core"
)

// Config describes the simulated rig. Durations are strings in Go
// duration syntax ("250ms", "2s") and convert to scheduler ticks.
type Config struct {
	Keypad   KeypadConfig   `yaml:"keypad"`
	Display  DisplayConfig  `yaml:"display"`
	Sequence SequenceConfig `yaml:"sequence"`
	Servo    ServoConfig    `yaml:"servo"`
	Remote   RemoteConfig   `yaml:"remote"`
}

type KeypadConfig struct {
	Poll      string         `yaml:"poll"`
	Longpress string         `yaml:"longpress"`
	Repeat    bool           `yaml:"repeat"`
	Buttons   []ButtonConfig `yaml:"buttons"`
}

type ButtonConfig struct {
	Tag   int    `yaml:"tag"`
	Name  string `yaml:"name"`
	Level uint16 `yaml:"level"`
}

type DisplayConfig struct {
	Cols    uint8  `yaml:"cols"`
	Rows    uint8  `yaml:"rows"`
	Refresh string `yaml:"refresh"`
}

type SequenceConfig struct {
	Wrap   bool          `yaml:"wrap"`
	Events []EventConfig `yaml:"events"`
}

type EventConfig struct {
	Name     string `yaml:"name"`
	Duration string `yaml:"duration"`
}

type ServoConfig struct {
	StepUS   uint32 `yaml:"step_us"`
	Interval string `yaml:"interval"`
}

type RemoteConfig struct {
	Buffer int `yaml:"buffer"`
}

// DefaultConfig returns a rig with a four button keypad, a 16x2
// display and a three phase sequence.
func DefaultConfig() *Config {
	return &Config{
		Keypad: KeypadConfig{
			Poll:      "25ms",
			Longpress: "1s",
			Buttons: []ButtonConfig{
				{Tag: 1, Name: "start", Level: 100},
				{Tag: 2, Name: "stop", Level: 300},
				{Tag: 3, Name: "next", Level: 600},
				{Tag: 4, Name: "prev", Level: 900},
			},
		},
		Display: DisplayConfig{Cols: 16, Rows: 2, Refresh: "100ms"},
		Sequence: SequenceConfig{
			Wrap: true,
			Events: []EventConfig{
				{Name: "warmup", Duration: "2s"},
				{Name: "run", Duration: "5s"},
				{Name: "cooldown", Duration: "3s"},
			},
		},
		Servo:  ServoConfig{StepUS: 40, Interval: "20ms"},
		Remote: RemoteConfig{Buffer: 128},
	}
}

// Load reads a rig configuration from a YAML file. Missing fields fall
// back to DefaultConfig values; unknown fields are rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the cross-field constraints the drivers assume
func (c *Config) Validate() error {
	if len(c.Sequence.Events) == 0 {
		return fmt.Errorf("sequence: at least one event required")
	}
	if len(c.Keypad.Buttons) == 0 {
		return fmt.Errorf("keypad: at least one button required")
	}
	for i := 1; i < len(c.Keypad.Buttons); i++ {
		if c.Keypad.Buttons[i].Level <= c.Keypad.Buttons[i-1].Level {
			return fmt.Errorf("keypad: buttons must have increasing trigger levels")
		}
	}
	if c.Display.Cols == 0 || c.Display.Rows == 0 {
		return fmt.Errorf("display: cols and rows must be nonzero")
	}
	if c.Remote.Buffer <= 0 {
		return fmt.Errorf("remote: buffer must be positive")
	}
	return nil
}

// ticksField parses a duration string into scheduler ticks, with a
// default for an empty value.
func ticksField(path, raw string, def time.Duration) (core.Ticks, error) {
	d := def
	if s := strings.TrimSpace(raw); s != "" {
		var err error
		d, err = time.ParseDuration(s)
		if err != nil {
			return 0, fmt.Errorf("%s: invalid duration %q: %w", path, raw, err)
		}
		if d < 0 {
			return 0, fmt.Errorf("%s: duration must be >= 0", path)
		}
	}
	return core.TicksFromMS(uint32(d / time.Millisecond)), nil
}
