package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"git.lost.host/meutraa/kson/internal/gauge"
	"gopkg.in/yaml.v3"
)

var ErrUnknownGauge = gauge.ErrUnknownType

type Settings struct {
	StartGauge    gauge.Type `yaml:"start_gauge"`
	FallbackGauge bool       `yaml:"fallback_gauge"`

	// Width of the gauge sparkline, 0 picks the terminal width
	SampleCount int `yaml:"sample_count"`
	OffsetMs    int `yaml:"offset_ms"`
}

func DefaultSettings() Settings {
	return Settings{
		StartGauge:    gauge.Normal,
		FallbackGauge: true,
	}
}

// LoadSettings reads a YAML settings file over the defaults. An empty path
// returns the defaults.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if nil != err {
		return s, fmt.Errorf("unable to read settings %v: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); nil != err && !errors.Is(err, io.EOF) {
		return s, fmt.Errorf("unable to parse settings %v: %w", path, err)
	}

	if err := s.validate(); nil != err {
		return s, fmt.Errorf("invalid settings %v: %w", path, err)
	}
	return s, nil
}

func (s *Settings) validate() error {
	switch s.StartGauge {
	case gauge.Normal, gauge.Hard:
	default:
		return fmt.Errorf("%w: %v", ErrUnknownGauge, s.StartGauge)
	}
	if s.SampleCount < 0 {
		return fmt.Errorf("sample_count must not be negative, got %d", s.SampleCount)
	}
	return nil
}

// Offset is the autoplay hit offset.
func (s *Settings) Offset() time.Duration {
	return time.Duration(s.OffsetMs) * time.Millisecond
}

// ApplyFlags overrides settings with the command line flags that were given.
func (s *Settings) ApplyFlags() error {
	if "" != *Gauge {
		if err := s.StartGauge.UnmarshalText([]byte(*Gauge)); nil != err {
			return fmt.Errorf("unable to use --gauge: %w", err)
		}
	}
	if *NoFallback {
		s.FallbackGauge = false
	}
	if 0 != *Width {
		s.SampleCount = *Width
	}
	if 0 != *Offset {
		s.OffsetMs = int((*Offset).Milliseconds())
	}
	return s.validate()
}
