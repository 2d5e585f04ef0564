// Package environ abstracts the process environment so that loaders and
// mappers can run against the real environment or an isolated in-memory one.
package environ

import (
	"os"
	"strings"
)

// Env is a mutable set of environment variables.
type Env interface {
	LookupEnv(name string) (string, bool)
	Setenv(name, value string) error
	Environ() map[string]string
}

type osEnv struct{}

// OS returns the Env backed by the process environment.
//
//nolint:ireturn // Env is the abstraction callers depend on
func OS() Env {
	return osEnv{}
}

func (osEnv) LookupEnv(name string) (string, bool) {
	return os.LookupEnv(name)
}

func (osEnv) Setenv(name, value string) error {
	return os.Setenv(name, value) //nolint:wrapcheck // passthrough
}

func (osEnv) Environ() map[string]string {
	return FromPairs(os.Environ())
}

// Map is an in-memory Env. The zero value is ready to use.
type Map map[string]string

// LookupEnv implements Env.
func (m Map) LookupEnv(name string) (string, bool) {
	value, ok := m[name]

	return value, ok
}

// Setenv implements Env.
func (m Map) Setenv(name, value string) error {
	m[name] = value

	return nil
}

// Environ implements Env and returns a copy of the variables.
func (m Map) Environ() map[string]string {
	out := make(map[string]string, len(m))
	for name, value := range m {
		out[name] = value
	}

	return out
}

// FromPairs converts "NAME=value" pairs, as returned by os.Environ, into a map.
// Pairs without a separator are ignored.
func FromPairs(pairs []string) map[string]string {
	out := make(map[string]string, len(pairs))

	for _, pair := range pairs {
		name, value, found := strings.Cut(pair, "=")
		if !found {
			continue
		}

		out[name] = value
	}

	return out
}
