package config

import (
	"log/slog"
	"path/filepath"
)

const (
	// FileName is the name of the global file inside the config home.
	FileName = "aio"
	// LocalFileName is the name of the per-project file in the working directory.
	LocalFileName = ".aio"
)

func (s *Store) workingDir() string {
	dir, err := s.settings.resolver.WorkingDir()
	if err != nil {
		s.logger.Debug("cannot resolve working directory", slog.String("error", err.Error()))

		return ""
	}

	return dir
}

// globalPath resolves the global file: explicit file, then XDG config home, then ~/.config.
func (s *Store) globalPath() string {
	if s.settings.globalFile != "" {
		return s.settings.globalFile
	}

	if explicit, ok := s.settings.resolver.ExplicitConfigFile(); ok {
		return explicit
	}

	if xdg, ok := s.settings.resolver.XDGConfigHome(); ok {
		return filepath.Join(xdg, FileName)
	}

	home, err := s.settings.resolver.HomeDir()
	if err != nil {
		s.logger.Debug("cannot resolve global config file", slog.String("error", err.Error()))

		return ""
	}

	return filepath.Join(home, ".config", FileName)
}

func (s *Store) localPath(dir string) string {
	if s.settings.localFile != "" {
		return s.settings.localFile
	}

	if dir == "" {
		return ""
	}

	return filepath.Join(dir, LocalFileName)
}
