package envfile

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidName is returned by Marshal for names that cannot appear on a data line.
var ErrInvalidName = errors.New("invalid variable name")

// ErrUnrepresentable is returned by Marshal for values the grammar cannot express.
var ErrUnrepresentable = errors.New("value cannot be represented")

// Entry is a single variable assignment.
type Entry struct {
	Name  string
	Value string
}

// Values is an ordered set of assignments with unique names.
type Values []Entry

// Lookup returns the value assigned to name.
func (v Values) Lookup(name string) (string, bool) {
	for _, entry := range v {
		if entry.Name == name {
			return entry.Value, true
		}
	}

	return "", false
}

// Names returns the variable names in file order.
func (v Values) Names() []string {
	names := make([]string, len(v))
	for i, entry := range v {
		names[i] = entry.Name
	}

	return names
}

// Map returns the assignments as a map.
func (v Values) Map() map[string]string {
	out := make(map[string]string, len(v))
	for _, entry := range v {
		out[entry.Name] = entry.Value
	}

	return out
}

// Parse parses .env text into assignments in file order.
// A name assigned more than once keeps its first position and its last value.
func Parse(text string) Values {
	var values Values

	index := map[string]int{}

	for _, line := range strings.Split(text, "\n") {
		name, value, ok := parseLine(line)
		if !ok {
			continue
		}

		if i, seen := index[name]; seen {
			values[i].Value = value

			continue
		}

		index[name] = len(values)
		values = append(values, Entry{Name: name, Value: value})
	}

	return values
}

func parseLine(line string) (string, string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", false
	}

	trimmed = strings.TrimPrefix(trimmed, "export ")

	sep := strings.IndexAny(trimmed, "=:")
	if sep < 0 {
		return "", "", false
	}

	name := strings.TrimSpace(trimmed[:sep])
	if name == "" {
		return "", "", false
	}

	return name, unquote(strings.TrimSpace(trimmed[sep+1:])), true
}

func unquote(value string) string {
	if len(value) < 2 {
		return value
	}

	quote := value[0]
	if (quote != '"' && quote != '\'') || value[len(value)-1] != quote {
		return value
	}

	inner := value[1 : len(value)-1]
	if quote == '"' {
		inner = strings.ReplaceAll(inner, `\n`, "\n")
	}

	return inner
}

// Marshal renders values as .env text that Parse reads back unchanged.
// Single-line values are single-quoted; values containing newlines are
// double-quoted with newlines written as \n.
func Marshal(values Values) (string, error) {
	var builder strings.Builder

	for _, entry := range values {
		if !validName(entry.Name) {
			return "", fmt.Errorf("%w: %q", ErrInvalidName, entry.Name)
		}

		builder.WriteString(entry.Name)
		builder.WriteByte('=')

		if strings.Contains(entry.Value, "\n") {
			if strings.Contains(entry.Value, `\n`) {
				return "", fmt.Errorf("%w: %s mixes newlines and literal \\n", ErrUnrepresentable, entry.Name)
			}

			builder.WriteByte('"')
			builder.WriteString(strings.ReplaceAll(entry.Value, "\n", `\n`))
			builder.WriteByte('"')
		} else {
			builder.WriteByte('\'')
			builder.WriteString(entry.Value)
			builder.WriteByte('\'')
		}

		builder.WriteByte('\n')
	}

	return builder.String(), nil
}

func validName(name string) bool {
	return name != "" &&
		name == strings.TrimSpace(name) &&
		!strings.ContainsAny(name, "=:\r\n") &&
		!strings.HasPrefix(name, "#") &&
		!strings.HasPrefix(name, "export ")
}
