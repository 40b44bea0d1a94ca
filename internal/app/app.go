// Package app implements the application layer for rcstring.
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"go.trai.ch/rcstring"
	"go.trai.ch/rcstring/internal/core/domain"
	"go.trai.ch/rcstring/internal/core/ports"
	"go.trai.ch/rcstring/internal/engine/stress"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	reader       ports.InputReader
	codec        ports.DocumentCodec
	logger       ports.Logger
	runner       *stress.Runner

	out      io.Writer
	settings *domain.Settings
}

// New creates a new App instance writing results to stdout.
func New(
	loader ports.ConfigLoader,
	reader ports.InputReader,
	codec ports.DocumentCodec,
	logger ports.Logger,
	runner *stress.Runner,
) *App {
	return &App{
		configLoader: loader,
		reader:       reader,
		codec:        codec,
		logger:       logger,
		runner:       runner,
		out:          os.Stdout,
		settings:     domain.DefaultSettings(),
	}
}

// WithOutput redirects command results to w.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// LoadSettings reads the configuration at path and applies its log level.
// With verbose set, debug output is enabled regardless of the file.
func (a *App) LoadSettings(path string, verbose bool) (*domain.Settings, error) {
	settings, err := a.configLoader.Load(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	level, err := settings.LogLevel()
	if err != nil {
		return nil, err
	}
	if verbose {
		level = slog.LevelDebug
	}
	a.logger.SetLevel(level)

	a.settings = settings
	return settings, nil
}

// Settings returns the active settings.
func (a *App) Settings() *domain.Settings {
	return a.settings
}

// SortOptions configures a sort run.
type SortOptions struct {
	Path       string
	Descending bool
	Unique     bool
}

// Sort prints the identifiers at opts.Path one per line in byte order.
func (a *App) Sort(ctx context.Context, opts SortOptions) error {
	ids, err := a.reader.ReadIdentifiers(opts.Path)
	if err != nil {
		return zerr.Wrap(err, "failed to read identifiers")
	}
	read := len(ids)

	ids = domain.SortIdentifiers(ids, opts.Descending, opts.Unique)
	defer releaseAll(ids)

	if err := a.writeLines(ctx, ids, func(id rcstring.SharedString) string { return id.String() }); err != nil {
		return err
	}

	a.logger.Info("sorted identifiers",
		"read", humanize.Comma(int64(read)),
		"written", humanize.Comma(int64(len(ids))),
		"descending", opts.Descending,
		"unique", opts.Unique,
	)
	return nil
}

// HashOptions configures a hash run.
type HashOptions struct {
	Path string
}

// Hash prints the content hash of every identifier at opts.Path, followed by
// a tab and the identifier itself.
func (a *App) Hash(ctx context.Context, opts HashOptions) error {
	ids, err := a.reader.ReadIdentifiers(opts.Path)
	if err != nil {
		return zerr.Wrap(err, "failed to read identifiers")
	}
	defer releaseAll(ids)

	if err := a.writeLines(ctx, ids, func(id rcstring.SharedString) string {
		return fmt.Sprintf("%016x\t%s", id.Hash(), id)
	}); err != nil {
		return err
	}

	a.logger.Debug("hashed identifiers", "count", humanize.Comma(int64(len(ids))))
	return nil
}

// ConvertOptions configures a document conversion.
type ConvertOptions struct {
	Path string
	From domain.Format
	To   domain.Format
}

// Convert decodes the document at opts.Path and writes it in opts.To.
func (a *App) Convert(_ context.Context, opts ConvertOptions) error {
	in, err := a.reader.Open(opts.Path)
	if err != nil {
		return zerr.Wrap(err, "failed to open document")
	}
	defer func() { _ = in.Close() }()

	doc, err := a.codec.Decode(in, opts.From)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to decode document"), "format", opts.From.String())
	}

	if err := a.codec.Encode(a.out, opts.To, doc); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to encode document"), "format", opts.To.String())
	}

	a.logger.Debug("converted document", "from", opts.From.String(), "to", opts.To.String())
	return nil
}

// StressOptions configures a stress run.
type StressOptions struct {
	Text       string
	Workers    int
	Iterations int
}

// Stress clones and releases one shared string from many goroutines and
// prints the observed live-handle counts.
func (a *App) Stress(ctx context.Context, opts StressOptions) (stress.Result, error) {
	text := rcstring.New(opts.Text)
	defer text.Release()

	a.logger.Debug("starting stress run", "workers", opts.Workers, "iterations", humanize.Comma(int64(opts.Iterations)))

	result, err := a.runner.Run(ctx, text, stress.Options{
		Workers:    opts.Workers,
		Iterations: opts.Iterations,
	})
	if err != nil {
		return result, zerr.Wrap(err, "stress run failed")
	}

	_, err = fmt.Fprintf(a.out, "workers=%d iterations=%s operations=%s initial=%d peak=%d final=%d elapsed=%s\n",
		result.Workers,
		humanize.Comma(int64(result.Iterations)),
		humanize.Comma(result.Operations),
		result.Initial,
		result.Peak,
		result.Final,
		result.Elapsed.Round(time.Microsecond),
	)
	if err != nil {
		return result, zerr.Wrap(err, "failed to write report")
	}
	return result, nil
}

func (a *App) writeLines(ctx context.Context, ids []rcstring.SharedString, line func(rcstring.SharedString) string) error {
	w := bufio.NewWriter(a.out)
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return zerr.Wrap(err, "output interrupted")
		}
		if _, err := w.WriteString(line(id) + "\n"); err != nil {
			return zerr.Wrap(err, "failed to write output")
		}
	}
	if err := w.Flush(); err != nil {
		return zerr.Wrap(err, "failed to write output")
	}
	return nil
}

func releaseAll(ids []rcstring.SharedString) {
	for i := range ids {
		ids[i].Release()
	}
}
