// Package acquire runs the external script which downloads the telemetry of
// two drivers and stores one record file per driver.
package acquire

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mpapenbr/lapcompare/log"
)

var (
	ErrInvalidParams = errors.New("invalid acquisition parameters")
	ErrScriptFailed  = errors.New("acquisition script failed")
)

// Params describe the lap selection. The script is called as
// <python> <script> <year> <event> <session> <driver1> <driver2> <outdir>
// and is expected to write <outdir>/<driver>.json for both drivers.
type Params struct {
	Python  string
	Script  string
	Year    int
	Event   string
	Session string
	Drivers [2]string
	OutDir  string
}

func (p Params) Validate() error {
	switch {
	case p.Python == "" || p.Script == "":
		return fmt.Errorf("%w: interpreter and script are required", ErrInvalidParams)
	case p.Year <= 0:
		return fmt.Errorf("%w: year %d", ErrInvalidParams, p.Year)
	case p.Event == "" || p.Session == "":
		return fmt.Errorf("%w: event and session are required", ErrInvalidParams)
	case p.Drivers[0] == "" || p.Drivers[1] == "":
		return fmt.Errorf("%w: two drivers are required", ErrInvalidParams)
	case p.OutDir == "":
		return fmt.Errorf("%w: output directory is required", ErrInvalidParams)
	}
	return nil
}

// Args returns the arguments passed to the interpreter
func (p Params) Args() []string {
	return []string{
		p.Script,
		strconv.Itoa(p.Year),
		p.Event,
		p.Session,
		p.Drivers[0],
		p.Drivers[1],
		p.OutDir,
	}
}

// RecordFile returns the path of the record file written for driver
func (p Params) RecordFile(driver string) string {
	return filepath.Join(p.OutDir, strings.ToUpper(driver)+".json")
}

// RecordFiles returns the record files of both drivers
func (p Params) RecordFiles() [2]string {
	return [2]string{p.RecordFile(p.Drivers[0]), p.RecordFile(p.Drivers[1])}
}

type (
	Fetcher struct {
		l       *log.Logger
		timeout time.Duration
	}
	Option func(*Fetcher)
)

func WithLogger(arg *log.Logger) Option {
	return func(f *Fetcher) {
		f.l = arg
	}
}

// WithTimeout limits the runtime of the script, 0 means no limit
func WithTimeout(arg time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = arg
	}
}

func NewFetcher(opts ...Option) *Fetcher {
	ret := &Fetcher{l: log.Default().Named("acquire")}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Fetch runs the script and returns the paths of both record files.
// A non-zero exit status or a missing record file is an error.
func (f *Fetcher) Fetch(ctx context.Context, p Params) ([2]string, error) {
	if err := p.Validate(); err != nil {
		return [2]string{}, err
	}
	if err := os.MkdirAll(p.OutDir, 0o755); err != nil {
		return [2]string{}, err
	}
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	//nolint:gosec // interpreter and script are configured by the user
	cmd := exec.CommandContext(ctx, p.Python, p.Args()...)
	var stderr bytes.Buffer
	cmd.Stdout = &lineLogger{l: f.l}
	cmd.Stderr = &stderr
	cmd.WaitDelay = time.Second

	f.l.Info("running acquisition script",
		log.String("python", p.Python),
		log.Any("args", p.Args()))
	start := time.Now()
	if err := cmd.Run(); err != nil {
		f.l.Error("acquisition script failed",
			log.ErrorField(err),
			log.String("stderr", strings.TrimSpace(stderr.String())))
		return [2]string{}, fmt.Errorf("%w: %w", ErrScriptFailed, err)
	}
	f.l.Info("acquisition done", log.Duration("elapsed", time.Since(start)))

	files := p.RecordFiles()
	for _, file := range files {
		if _, err := os.Stat(file); err != nil {
			return [2]string{}, fmt.Errorf("%w: no record written: %w", ErrScriptFailed, err)
		}
	}
	return files, nil
}

// lineLogger forwards complete output lines of the script to the logger
type lineLogger struct {
	l   *log.Logger
	buf []byte
}

func (w *lineLogger) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	for {
		idx := bytes.IndexByte(w.buf, '\n')
		if idx < 0 {
			return len(p), nil
		}
		if line := strings.TrimSpace(string(w.buf[:idx])); line != "" {
			w.l.Debug("script", log.String("line", line))
		}
		w.buf = w.buf[idx+1:]
	}
}
