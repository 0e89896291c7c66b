package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"
	"unicode/utf8"

	"github.com/ava12/tgff"
	"github.com/ava12/tgff/source"
)

var errNotUTF8 = errors.New("file is not valid UTF-8 text")

// readInput reads the whole file, input longer than maxSize is rejected.
func readInput(path string, maxSize int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readLimited(path, f, maxSize)
}

// readLimited reads at most maxSize bytes, the size reported by the file system is not trusted
// since pipes and devices report zero.
func readLimited(name string, r io.Reader, maxSize int64) ([]byte, error) {
	content, err := io.ReadAll(io.LimitReader(r, maxSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(content)) > maxSize {
		return nil, fmt.Errorf("%s: input size exceeds limit %d", name, maxSize)
	}
	if !utf8.Valid(content) {
		return nil, fmt.Errorf("%s: %w", name, errNotUTF8)
	}
	return content, nil
}

// parseError is a syntax error with the offending source line attached.
type parseError struct {
	path string
	text string
	err  *tgff.Error
}

func (e *parseError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.path, e.err.Line, e.err.Message)
}

func (e *parseError) Unwrap() error {
	return e.err
}

func (a *app) parseFile(path string) (*tgff.Content, error) {
	content, err := readInput(path, a.cfg.Input.MaxSize)
	if err != nil {
		return nil, err
	}

	log := a.logger.With("file", path)
	log.Debug("parsing", "size", len(content))
	started := time.Now()
	c, err := tgff.ParseBytes(path, content)
	if err != nil {
		var pe *tgff.Error
		if errors.As(err, &pe) {
			src := source.New(path, content)
			log.Info("syntax error", "line", pe.Line, "message", pe.Message)
			return nil, &parseError{src.Name(), string(src.LineText(pe.Line)), pe}
		}
		return nil, err
	}

	log.Info("parsed",
		"duration", time.Since(started),
		"graphs", len(c.Graphs),
		"tables", len(c.Tables),
	)
	return c, nil
}
