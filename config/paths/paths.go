// Package paths resolves the directories the config store derives its
// file locations from.
package paths

import (
	"fmt"
	"os"

	"github.com/0xalexb/aio-config/environ"
)

const (
	// XDGConfigHomeVar names the XDG base directory for user configuration.
	XDGConfigHomeVar = "XDG_CONFIG_HOME"
	// ConfigFileVar names an explicit global configuration file.
	ConfigFileVar = "AIO_CONFIG_FILE"
)

// Resolver answers path questions from the operating system and an environment.
type Resolver struct {
	env     environ.Env
	getwd   func() (string, error)
	homeDir func() (string, error)
}

// NewResolver creates a Resolver reading variables from env.
func NewResolver(env environ.Env) *Resolver {
	return &Resolver{
		env:     env,
		getwd:   os.Getwd,
		homeDir: os.UserHomeDir,
	}
}

// WorkingDir returns the current working directory.
func (r *Resolver) WorkingDir() (string, error) {
	dir, err := r.getwd()
	if err != nil {
		return "", fmt.Errorf("working directory: %w", err)
	}

	return dir, nil
}

// HomeDir returns the home directory of the current user.
func (r *Resolver) HomeDir() (string, error) {
	dir, err := r.homeDir()
	if err != nil {
		return "", fmt.Errorf("home directory: %w", err)
	}

	return dir, nil
}

// XDGConfigHome returns $XDG_CONFIG_HOME when it is set and non-empty.
func (r *Resolver) XDGConfigHome() (string, bool) {
	return r.lookup(XDGConfigHomeVar)
}

// ExplicitConfigFile returns $AIO_CONFIG_FILE when it is set and non-empty.
func (r *Resolver) ExplicitConfigFile() (string, bool) {
	return r.lookup(ConfigFileVar)
}

func (r *Resolver) lookup(name string) (string, bool) {
	value, ok := r.env.LookupEnv(name)
	if !ok || value == "" {
		return "", false
	}

	return value, true
}
