package config

import (
	"errors"
	"fmt"

	jsoncodec "github.com/0xalexb/aio-config/config/codec/json"
	yamlcodec "github.com/0xalexb/aio-config/config/codec/yaml"
)

// ErrUnknownLayer is returned for a layer name outside global, local and environment.
var ErrUnknownLayer = errors.New("unknown layer")

// ErrReadOnlyLayer is returned when writing to the environment layer.
var ErrReadOnlyLayer = errors.New("layer is read-only")

// ErrUnknownFormat is returned for a layer format without a codec.
var ErrUnknownFormat = errors.New("unknown format")

// ErrNoLocation is returned when a file layer has no resolvable location to persist to.
var ErrNoLocation = errors.New("no file location")

// Layer names one configuration source.
type Layer string

const (
	// LayerGlobal is the per-user file.
	LayerGlobal Layer = "global"
	// LayerLocal is the per-project file.
	LayerLocal Layer = "local"
	// LayerEnvironment is derived from AIO_* environment variables.
	LayerEnvironment Layer = "environment"
)

// ParseLayer converts a layer name into a Layer.
func ParseLayer(name string) (Layer, error) {
	switch layer := Layer(name); layer {
	case LayerGlobal, LayerLocal, LayerEnvironment:
		return layer, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownLayer, name)
	}
}

// Format selects the codec of a file layer.
type Format string

const (
	// FormatYAML is the relaxed format: YAML with comments, JSON accepted on read.
	FormatYAML Format = "yaml"
	// FormatJSON is the plain format.
	FormatJSON Format = "json"
)

// Codec converts between a document and its file representation.
type Codec interface {
	Decode(data []byte) (map[string]any, error)
	Encode(doc map[string]any) ([]byte, error)
}

// Codec returns the codec for f.
//
//nolint:ireturn // the set of codecs is closed and selected at runtime
func (f Format) Codec() (Codec, error) {
	switch f {
	case FormatYAML:
		return yamlcodec.NewCodec(), nil
	case FormatJSON:
		return jsoncodec.NewCodec(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

// Location identifies the backing file of a file layer.
// An empty Path means the location could not be resolved.
type Location struct {
	Path   string
	Format Format
}

// PathResolver supplies the directories file locations are derived from.
type PathResolver interface {
	WorkingDir() (string, error)
	HomeDir() (string, error)
	XDGConfigHome() (string, bool)
	ExplicitConfigFile() (string, bool)
}

// FileStore reads and writes whole text files.
type FileStore interface {
	ReadText(path string) (string, error)
	WriteText(path string, text string) error
}
