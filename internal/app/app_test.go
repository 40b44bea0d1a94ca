package app_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rcstring"
	"go.trai.ch/rcstring/internal/app"
	"go.trai.ch/rcstring/internal/core/domain"
	"go.trai.ch/rcstring/internal/core/ports/mocks"
	"go.trai.ch/rcstring/internal/engine/stress"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	loader *mocks.MockConfigLoader
	reader *mocks.MockInputReader
	codec  *mocks.MockDocumentCodec
	logger *mocks.MockLogger
	out    *bytes.Buffer
	app    *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		loader: mocks.NewMockConfigLoader(ctrl),
		reader: mocks.NewMockInputReader(ctrl),
		codec:  mocks.NewMockDocumentCodec(ctrl),
		logger: mocks.NewMockLogger(ctrl),
		out:    &bytes.Buffer{},
	}
	f.logger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	f.app = app.New(f.loader, f.reader, f.codec, f.logger, stress.New(f.logger)).WithOutput(f.out)
	return f
}

func ids(texts ...string) []rcstring.SharedString {
	out := make([]rcstring.SharedString, len(texts))
	for i, s := range texts {
		out[i] = rcstring.New(s)
	}
	return out
}

func TestApp_LoadSettings(t *testing.T) {
	f := newFixture(t)

	settings := domain.DefaultSettings()
	settings.Log.Level = "warn"
	settings.Sort.Unique = true
	f.loader.EXPECT().Load("rcstring.yaml").Return(settings, nil)
	f.logger.EXPECT().SetLevel(slog.LevelWarn)

	got, err := f.app.LoadSettings("rcstring.yaml", false)
	require.NoError(t, err)
	assert.Same(t, settings, got)
	assert.Same(t, settings, f.app.Settings())
}

func TestApp_LoadSettings_Verbose(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load("custom.yaml").Return(domain.DefaultSettings(), nil)
	f.logger.EXPECT().SetLevel(slog.LevelDebug)

	_, err := f.app.LoadSettings("custom.yaml", true)
	require.NoError(t, err)
}

func TestApp_LoadSettings_Error(t *testing.T) {
	f := newFixture(t)

	loadErr := errors.New("disk on fire")
	f.loader.EXPECT().Load(gomock.Any()).Return(nil, loadErr)

	_, err := f.app.LoadSettings("rcstring.yaml", false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, loadErr))
	assert.Equal(t, domain.DefaultSettings(), f.app.Settings())
}

func TestApp_Sort(t *testing.T) {
	tests := []struct {
		name string
		opts app.SortOptions
		want string
	}{
		{
			name: "ascending",
			opts: app.SortOptions{Path: "ids.txt"},
			want: "GO:0005737\nGO:0061630\nGO:0120113\nGO:0120113\n",
		},
		{
			name: "descending unique",
			opts: app.SortOptions{Path: "ids.txt", Descending: true, Unique: true},
			want: "GO:0120113\nGO:0061630\nGO:0005737\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.reader.EXPECT().ReadIdentifiers("ids.txt").
				Return(ids("GO:0120113", "GO:0005737", "GO:0120113", "GO:0061630"), nil)
			f.logger.EXPECT().Info("sorted identifiers", gomock.Any()).Times(1)

			require.NoError(t, f.app.Sort(context.Background(), tt.opts))
			assert.Equal(t, tt.want, f.out.String())
		})
	}
}

func TestApp_Sort_ReadError(t *testing.T) {
	f := newFixture(t)

	readErr := errors.New("unreadable")
	f.reader.EXPECT().ReadIdentifiers("-").Return(nil, readErr)

	err := f.app.Sort(context.Background(), app.SortOptions{Path: "-"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, readErr))
	assert.Empty(t, f.out.String())
}

func TestApp_Hash(t *testing.T) {
	f := newFixture(t)

	f.reader.EXPECT().ReadIdentifiers("ids.txt").Return(ids("GO:0005737", "GO:0005737", "GO:0061630"), nil)

	require.NoError(t, f.app.Hash(context.Background(), app.HashOptions{Path: "ids.txt"}))

	lines := strings.Split(strings.TrimSuffix(f.out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, lines[0], lines[1], "equal content hashes equally")
	assert.Equal(t, fmt.Sprintf("%016x\tGO:0061630", rcstring.New("GO:0061630").Hash()), lines[2])
}

func TestApp_Convert(t *testing.T) {
	f := newFixture(t)

	doc := domain.Map{rcstring.New("key"): rcstring.New("value")}
	f.reader.EXPECT().Open("doc.json").Return(io.NopCloser(strings.NewReader(`{"key":"value"}`)), nil)
	f.codec.EXPECT().Decode(gomock.Any(), domain.FormatJSON).Return(doc, nil)
	f.codec.EXPECT().Encode(f.out, domain.FormatYAML, gomock.Any()).
		DoAndReturn(func(w io.Writer, _ domain.Format, v domain.Value) error {
			m, ok := v.(domain.Map)
			require.True(t, ok)
			value, ok := m.Lookup("key")
			require.True(t, ok)
			_, err := fmt.Fprintf(w, "key: %s\n", value)
			return err
		})

	err := f.app.Convert(context.Background(), app.ConvertOptions{
		Path: "doc.json",
		From: domain.FormatJSON,
		To:   domain.FormatYAML,
	})
	require.NoError(t, err)
	assert.Equal(t, "key: value\n", f.out.String())
}

func TestApp_Convert_DecodeError(t *testing.T) {
	f := newFixture(t)

	decodeErr := errors.New("bad document")
	f.reader.EXPECT().Open("doc.yaml").Return(io.NopCloser(strings.NewReader("")), nil)
	f.codec.EXPECT().Decode(gomock.Any(), domain.FormatYAML).Return(nil, decodeErr)

	err := f.app.Convert(context.Background(), app.ConvertOptions{
		Path: "doc.yaml",
		From: domain.FormatYAML,
		To:   domain.FormatJSON,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, decodeErr))
}

func TestApp_Stress(t *testing.T) {
	f := newFixture(t)

	result, err := f.app.Stress(context.Background(), app.StressOptions{
		Text:       "GO:0005737",
		Workers:    4,
		Iterations: 1500,
	})
	require.NoError(t, err)
	assert.Equal(t, result.Initial, result.Final)
	assert.Contains(t, f.out.String(), "workers=4 iterations=1,500 operations=6,000 initial=1 ")
	assert.Contains(t, f.out.String(), " final=1 ")
}

func TestApp_Stress_InvalidOptions(t *testing.T) {
	f := newFixture(t)

	_, err := f.app.Stress(context.Background(), app.StressOptions{Text: "x", Workers: 0, Iterations: 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidSettings))
	assert.Empty(t, f.out.String())
}
