package envfile

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/0xalexb/aio-config/environ"
)

// FileName is the name of the .env file looked up in the working directory.
const FileName = ".env"

// Reader reads a whole text file.
type Reader interface {
	ReadText(path string) (string, error)
}

// Loader hoists a .env file into an environment.
type Loader struct {
	state  *State
	reader Reader
	env    environ.Env
	logger *slog.Logger
}

// NewLoader creates a Loader. A nil state uses ProcessState and a nil logger uses slog.Default.
func NewLoader(state *State, reader Reader, env environ.Env, logger *slog.Logger) *Loader {
	if state == nil {
		state = ProcessState()
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Loader{
		state:  state,
		reader: reader,
		env:    env,
		logger: logger,
	}
}

// Path returns the .env location for the working directory dir.
func Path(dir string) string {
	path := filepath.Join(dir, FileName)

	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}

	return abs
}

// Load hoists <dir>/.env into the environment.
//
// Unless force is set, nothing happens when the same file was already
// handled by an earlier Load. A file that cannot be read is logged and
// skipped. Variables already present in the environment are kept.
// The marker is updated in every case that reaches the file.
func (l *Loader) Load(dir string, force bool) {
	path := Path(dir)

	if marker, ok := l.state.Marker(); ok && marker == path && !force {
		return
	}

	defer l.state.mark(path)

	l.state.loaded = nil

	text, err := l.reader.ReadText(path)
	if err != nil {
		l.logger.Debug("cannot read env file", slog.String("path", path), slog.String("error", err.Error()))
		l.logger.Debug("skipping env file", slog.String("path", path))

		return
	}

	var added []string

	for _, entry := range Parse(text) {
		if _, exists := l.env.LookupEnv(entry.Name); exists {
			continue
		}

		err := l.env.Setenv(entry.Name, entry.Value)
		if err != nil {
			l.logger.Debug("cannot set environment variable",
				slog.String("name", entry.Name), slog.String("error", err.Error()))

			continue
		}

		added = append(added, entry.Name)
	}

	l.state.loaded = added

	if len(added) > 0 {
		l.logger.Debug(fmt.Sprintf("added environment variable(s): %s", strings.Join(added, ", ")),
			slog.String("path", path))
	}
}
