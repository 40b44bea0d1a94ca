package domain_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rcstring/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestDefaultSettings_Valid(t *testing.T) {
	s := domain.DefaultSettings()
	require.NoError(t, s.Validate())

	level, err := s.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *domain.Settings)
		wantErr error
	}{
		{
			name:    "unknown log level",
			mutate:  func(s *domain.Settings) { s.Log.Level = "loud" },
			wantErr: domain.ErrInvalidSettings,
		},
		{
			name:    "unknown input format",
			mutate:  func(s *domain.Settings) { s.Convert.From = "toml" },
			wantErr: domain.ErrUnknownFormat,
		},
		{
			name:    "unknown output format",
			mutate:  func(s *domain.Settings) { s.Convert.To = "xml" },
			wantErr: domain.ErrUnknownFormat,
		},
		{
			name:    "no workers",
			mutate:  func(s *domain.Settings) { s.Stress.Workers = 0 },
			wantErr: domain.ErrInvalidSettings,
		},
		{
			name:    "negative iterations",
			mutate:  func(s *domain.Settings) { s.Stress.Iterations = -1 },
			wantErr: domain.ErrInvalidSettings,
		},
		{
			name:   "debug level",
			mutate: func(s *domain.Settings) { s.Log.Level = "DEBUG" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := domain.DefaultSettings()
			tt.mutate(s)

			err := s.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestParseFormat(t *testing.T) {
	for name, want := range map[string]domain.Format{
		"json": domain.FormatJSON,
		"JSON": domain.FormatJSON,
		"yaml": domain.FormatYAML,
		"yml":  domain.FormatYAML,
	} {
		got, err := domain.ParseFormat(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got)
	}

	_, err := domain.ParseFormat("csv")
	require.Error(t, err)

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr), "expected *zerr.Error, got %T", err)
	assert.Equal(t, "csv", zErr.Metadata()["format"])
}
