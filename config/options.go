package config

import (
	"log/slog"

	"github.com/0xalexb/aio-config/config/paths"
	"github.com/0xalexb/aio-config/config/storage/file"
	"github.com/0xalexb/aio-config/envfile"
	"github.com/0xalexb/aio-config/environ"
)

type settings struct {
	resolver   PathResolver
	files      FileStore
	env        environ.Env
	logger     *slog.Logger
	state      *envfile.State
	format     Format
	globalFile string
	localFile  string
}

// Option defines a function type for configuring a Store.
type Option func(*settings)

// WithPathResolver sets the resolver used to locate files. Defaults to paths.NewResolver over the Store environment.
func WithPathResolver(resolver PathResolver) Option {
	return func(s *settings) {
		s.resolver = resolver
	}
}

// WithFileStore sets the storage used for the .env file and both file layers.
func WithFileStore(files FileStore) Option {
	return func(s *settings) {
		s.files = files
	}
}

// WithEnvironment sets the environment the .env file is hoisted into and AIO_* variables are read from.
func WithEnvironment(env environ.Env) Option {
	return func(s *settings) {
		s.env = env
	}
}

// WithLogger sets the logger for diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithEnvFileState sets the state remembering the last loaded .env file.
// Defaults to envfile.ProcessState.
func WithEnvFileState(state *envfile.State) Option {
	return func(s *settings) {
		s.state = state
	}
}

// WithFormat sets the format of both file layers.
func WithFormat(format Format) Option {
	return func(s *settings) {
		s.format = format
	}
}

// WithGlobalFile pins the global layer to path instead of resolving it.
func WithGlobalFile(path string) Option {
	return func(s *settings) {
		s.globalFile = path
	}
}

// WithLocalFile pins the local layer to path instead of resolving it.
func WithLocalFile(path string) Option {
	return func(s *settings) {
		s.localFile = path
	}
}

func newSettings(opts []Option) settings {
	var s settings

	for _, apply := range opts {
		apply(&s)
	}

	if s.env == nil {
		s.env = environ.OS()
	}

	if s.resolver == nil {
		s.resolver = paths.NewResolver(s.env)
	}

	if s.files == nil {
		s.files = file.NewStore()
	}

	if s.logger == nil {
		s.logger = slog.Default()
	}

	if s.state == nil {
		s.state = envfile.ProcessState()
	}

	if s.format == "" {
		s.format = FormatYAML
	}

	return s
}
