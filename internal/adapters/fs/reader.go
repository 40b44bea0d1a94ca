// Package fs provides file system adapters for reading command input.
package fs

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"github.com/spf13/afero"
	"go.trai.ch/rcstring"
	"go.trai.ch/rcstring/internal/core/ports"
	"go.trai.ch/zerr"
)

// maxLineSize bounds a single identifier line.
const maxLineSize = 1 << 20

// Reader implements ports.InputReader over an afero filesystem.
type Reader struct {
	fs    afero.Fs
	stdin io.Reader
}

// NewReader creates a Reader that opens paths in fsys and reads stdin for
// ports.StdinPath.
func NewReader(fsys afero.Fs, stdin io.Reader) *Reader {
	return &Reader{fs: fsys, stdin: stdin}
}

// Open returns the content at path, or standard input for ports.StdinPath or "".
// Closing the returned reader never closes standard input.
func (r *Reader) Open(path string) (io.ReadCloser, error) {
	if path == "" || path == ports.StdinPath {
		return io.NopCloser(r.stdin), nil
	}
	f, err := r.fs.Open(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open input"), "path", path)
	}
	return f, nil
}

// ReadIdentifiers returns one SharedString per non-blank line at path.
// Lines are trimmed of surrounding whitespace and must be valid UTF-8.
func (r *Reader) ReadIdentifiers(path string) ([]rcstring.SharedString, error) {
	in, err := r.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	var ids []rcstring.SharedString
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	line := 0
	for scanner.Scan() {
		line++
		text := bytes.TrimSpace(scanner.Bytes())
		if len(text) == 0 {
			continue
		}
		id, err := rcstring.FromBytes(text)
		if err != nil {
			releaseAll(ids)
			return nil, zerr.With(zerr.With(err, "path", displayPath(path)), "line", line)
		}
		ids = append(ids, id)
	}
	if err := scanner.Err(); err != nil {
		releaseAll(ids)
		return nil, zerr.With(zerr.Wrap(err, "failed to read input"), "path", displayPath(path))
	}
	return ids, nil
}

func releaseAll(ids []rcstring.SharedString) {
	for i := range ids {
		ids[i].Release()
	}
}

func displayPath(path string) string {
	if path == "" || path == ports.StdinPath {
		return os.Stdin.Name()
	}
	return path
}
