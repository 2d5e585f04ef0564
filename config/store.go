package config

import (
	"fmt"
	"log/slog"

	"github.com/0xalexb/aio-config/document"
	"github.com/0xalexb/aio-config/envfile"
	"github.com/0xalexb/aio-config/envvar"
)

type fileLayer struct {
	name     Layer
	location Location
	values   map[string]any
}

// Store merges the global, local and environment layers.
type Store struct {
	settings settings
	logger   *slog.Logger
	loader   *envfile.Loader

	global fileLayer
	local  fileLayer
	env    map[string]any
	merged map[string]any
}

// New creates an empty Store. Call Reload to populate it.
func New(opts ...Option) *Store {
	s := newSettings(opts)

	return &Store{
		settings: s,
		logger:   s.logger,
		loader:   envfile.NewLoader(s.state, s.files, s.env, s.logger),
		global:   fileLayer{name: LayerGlobal, values: map[string]any{}},
		local:    fileLayer{name: LayerLocal, values: map[string]any{}},
		env:      map[string]any{},
		merged:   map[string]any{},
	}
}

// Load creates a Store and reloads it.
func Load(opts ...Option) *Store {
	return New(opts...).Reload()
}

// Reload re-reads every layer and recomputes the merged view.
//
// The .env file of the working directory is loaded first, then both files
// are located and read, then the environment layer is derived. Unreadable
// or malformed files are logged and read as empty documents.
func (s *Store) Reload() *Store {
	dir := s.workingDir()
	if dir != "" {
		s.loader.Load(dir, false)
	}

	s.global.location = Location{Path: s.globalPath(), Format: s.settings.format}
	s.local.location = Location{Path: s.localPath(dir), Format: s.settings.format}

	s.global.values = s.read(s.global)
	s.local.values = s.read(s.local)
	s.env = envvar.Map(s.settings.env.Environ())

	s.merge()

	return s
}

func (s *Store) read(layer fileLayer) map[string]any {
	path := layer.location.Path
	if path == "" {
		return map[string]any{}
	}

	text, err := s.settings.files.ReadText(path)
	if err != nil {
		s.logger.Debug("cannot read config file",
			slog.String("layer", string(layer.name)), slog.String("path", path), slog.String("error", err.Error()))

		return map[string]any{}
	}

	codec, err := layer.location.Format.Codec()
	if err != nil {
		s.logger.Debug("cannot decode config file",
			slog.String("layer", string(layer.name)), slog.String("path", path), slog.String("error", err.Error()))

		return map[string]any{}
	}

	doc, err := codec.Decode([]byte(text))
	if err != nil {
		s.logger.Debug("cannot decode config file",
			slog.String("layer", string(layer.name)), slog.String("path", path), slog.String("error", err.Error()))

		return map[string]any{}
	}

	return doc
}

func (s *Store) merge() {
	s.merged = document.Merge(s.global.values, s.local.values, s.env)
}

// Get returns the merged value at key, or nil if it is absent.
// An empty key returns the whole merged document.
// The result is a copy; mutating it does not affect the Store.
func (s *Store) Get(key string) any {
	return lookup(s.merged, key)
}

// GetLayer returns the value at key within one layer, or nil if it is absent
// or layer is unknown. An empty key returns the whole layer document.
func (s *Store) GetLayer(layer Layer, key string) any {
	switch layer {
	case LayerGlobal:
		return lookup(s.global.values, key)
	case LayerLocal:
		return lookup(s.local.values, key)
	case LayerEnvironment:
		return lookup(s.env, key)
	default:
		return nil
	}
}

func lookup(doc map[string]any, key string) any {
	value, ok := document.Get(doc, key)
	if !ok {
		return nil
	}

	return document.Clone(value)
}

// Location returns the backing file of a file layer as of the last Reload.
func (s *Store) Location(layer Layer) (Location, bool) {
	switch layer {
	case LayerGlobal:
		return s.global.location, true
	case LayerLocal:
		return s.local.location, true
	default:
		return Location{}, false
	}
}

// Set writes value at key in the global file. An empty key clears the layer.
func (s *Store) Set(key string, value any) error {
	return s.SetLayer(LayerGlobal, key, value)
}

// SetLocal writes value at key in the local file. An empty key clears the layer.
func (s *Store) SetLocal(key string, value any) error {
	return s.SetLayer(LayerLocal, key, value)
}

// SetLayer writes value at key in the given file layer and persists it.
// An empty key replaces the layer with an empty document.
func (s *Store) SetLayer(layer Layer, key string, value any) error {
	return s.write(layer, func(doc map[string]any) map[string]any {
		if document.IsRoot(key) {
			return map[string]any{}
		}

		document.Set(doc, key, document.Normalize(value))

		return doc
	})
}

// Delete removes key from the global file.
func (s *Store) Delete(key string) error {
	return s.DeleteLayer(LayerGlobal, key)
}

// DeleteLocal removes key from the local file.
func (s *Store) DeleteLocal(key string) error {
	return s.DeleteLayer(LayerLocal, key)
}

// DeleteLayer removes key from the given file layer and persists it.
// Removing an absent key still rewrites the file.
func (s *Store) DeleteLayer(layer Layer, key string) error {
	return s.write(layer, func(doc map[string]any) map[string]any {
		document.Delete(doc, key)

		return doc
	})
}

// write applies mutate to a copy of the layer and commits it only once the
// file has been written, so memory and disk never disagree.
func (s *Store) write(layer Layer, mutate func(map[string]any) map[string]any) error {
	target, err := s.fileLayer(layer)
	if err != nil {
		return err
	}

	next := mutate(document.CloneMap(target.values))

	err = s.persist(target, next)
	if err != nil {
		return fmt.Errorf("persisting %s config: %w", layer, err)
	}

	target.values = next
	s.merge()

	return nil
}

func (s *Store) fileLayer(layer Layer) (*fileLayer, error) {
	switch layer {
	case LayerGlobal:
		return &s.global, nil
	case LayerLocal:
		return &s.local, nil
	case LayerEnvironment:
		return nil, fmt.Errorf("%w: %s", ErrReadOnlyLayer, layer)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLayer, string(layer))
	}
}

func (s *Store) persist(layer *fileLayer, doc map[string]any) error {
	path := layer.location.Path
	if path == "" {
		return ErrNoLocation
	}

	codec, err := layer.location.Format.Codec()
	if err != nil {
		return err
	}

	data, err := codec.Encode(doc)
	if err != nil {
		return fmt.Errorf("encoding %q: %w", path, err)
	}

	err = s.settings.files.WriteText(path, string(data))
	if err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}

	return nil
}
