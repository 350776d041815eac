// Package state keeps the run-wide settings derived from the command line and
// the configuration files they name.
package state

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/theflywheel/chaintable/internal/logger"
)

// StdinName is the file name that stands for standard input.
const StdinName = "-"

// State is what the command line asked for.
type State struct {
	Interactive      bool
	VersionRequested bool
	Port             uint16
}

// SetPort validates and stores a port number given on the command line.
func (s *State) SetPort(port int) error {
	if port < 0 || port > math.MaxUint16 {
		return fmt.Errorf("--port can only take values between 0 and %d", math.MaxUint16)
	}
	s.Port = uint16(port)
	return nil
}

// ConfigFile is one opened configuration source.
type ConfigFile struct {
	Name string
	r    io.ReadCloser
}

// Read implements io.Reader.
func (f *ConfigFile) Read(p []byte) (int, error) {
	return f.r.Read(p)
}

// ConfigFiles is the set of configuration files a run operates on.
type ConfigFiles struct {
	Files []*ConfigFile
}

// OpenConfigFiles opens every named file, in order. Either all files are
// opened or none are: on failure the files opened so far are closed again.
// The name "-" refers to stdin (os.Stdin when nil), which is never closed.
func OpenConfigFiles(names []string, stdin io.Reader) (*ConfigFiles, error) {
	if stdin == nil {
		stdin = os.Stdin
	}
	files := &ConfigFiles{Files: make([]*ConfigFile, 0, len(names))}
	for _, name := range names {
		if name == StdinName {
			files.Files = append(files.Files, &ConfigFile{Name: "<stdin>", r: io.NopCloser(stdin)})
			continue
		}
		f, err := os.Open(name)
		if err != nil {
			// the open error is what the caller needs to see
			_ = files.Close()
			return nil, fmt.Errorf("error opening file %q: %w", name, err)
		}
		logger.L.Debug("opened config file", "name", name)
		files.Files = append(files.Files, &ConfigFile{Name: name, r: f})
	}
	return files, nil
}

// Close closes every file and reports all errors joined together.
func (c *ConfigFiles) Close() error {
	if c == nil {
		return nil
	}
	var errs []error
	for _, f := range c.Files {
		if err := f.r.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", f.Name, err))
		}
	}
	c.Files = nil
	return errors.Join(errs...)
}
