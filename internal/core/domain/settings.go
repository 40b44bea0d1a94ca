package domain

import (
	"log/slog"

	"go.trai.ch/zerr"
)

// Settings holds the tool configuration read from rcstring.yaml.
type Settings struct {
	Log     LogSettings     `yaml:"log"`
	Sort    SortSettings    `yaml:"sort"`
	Convert ConvertSettings `yaml:"convert"`
	Stress  StressSettings  `yaml:"stress"`
}

// LogSettings configures the logger.
type LogSettings struct {
	Level string `yaml:"level"`
}

// SortSettings are the defaults of the sort command.
type SortSettings struct {
	Descending bool `yaml:"descending"`
	Unique     bool `yaml:"unique"`
}

// ConvertSettings are the defaults of the convert command.
type ConvertSettings struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// StressSettings are the defaults of the stress command.
type StressSettings struct {
	Workers    int `yaml:"workers"`
	Iterations int `yaml:"iterations"`
}

// DefaultSettings returns the settings used when no configuration file exists.
func DefaultSettings() *Settings {
	return &Settings{
		Log:     LogSettings{Level: "info"},
		Convert: ConvertSettings{From: string(FormatJSON), To: string(FormatYAML)},
		Stress:  StressSettings{Workers: 8, Iterations: 10000},
	}
}

// LogLevel parses the configured log level.
func (s *Settings) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s.Log.Level)); err != nil {
		return 0, zerr.With(zerr.Wrap(ErrInvalidSettings, "unknown log level"), "log.level", s.Log.Level)
	}
	return level, nil
}

// Validate checks every field and returns the first problem found.
func (s *Settings) Validate() error {
	if _, err := s.LogLevel(); err != nil {
		return err
	}
	if _, err := ParseFormat(s.Convert.From); err != nil {
		return zerr.With(err, "field", "convert.from")
	}
	if _, err := ParseFormat(s.Convert.To); err != nil {
		return zerr.With(err, "field", "convert.to")
	}
	if s.Stress.Workers < 1 {
		return zerr.With(zerr.Wrap(ErrInvalidSettings, "stress.workers must be positive"), "stress.workers", s.Stress.Workers)
	}
	if s.Stress.Iterations < 0 {
		return zerr.With(zerr.Wrap(ErrInvalidSettings, "stress.iterations must not be negative"), "stress.iterations", s.Stress.Iterations)
	}
	return nil
}
