package envfile

import "slices"

// State records which .env file was loaded last and which variables that
// load added. One State is meant to live for the whole process.
type State struct {
	marker    string
	hasMarker bool
	loaded    []string
}

//nolint:gochecknoglobals // process lifetime singleton shared by every Loader that does not bring its own State.
var processState = &State{}

// ProcessState returns the State shared by the whole process.
func ProcessState() *State {
	return processState
}

// Marker returns the absolute path of the last .env file a load was attempted for.
func (s *State) Marker() (string, bool) {
	return s.marker, s.hasMarker
}

// Loaded returns the names of the variables added by the most recent load.
func (s *State) Loaded() []string {
	return slices.Clone(s.loaded)
}

// Reset forgets the marker and the loaded names.
func (s *State) Reset() {
	s.marker = ""
	s.hasMarker = false
	s.loaded = nil
}

func (s *State) mark(path string) {
	s.marker = path
	s.hasMarker = true
}
