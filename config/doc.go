// Package config resolves layered configuration for command-line tools.
//
// A Store holds three layers:
//   - global: a per-user file, $AIO_CONFIG_FILE or $XDG_CONFIG_HOME/aio or ~/.config/aio
//   - local: a per-project file, <cwd>/.aio
//   - environment: derived from AIO_* variables (see package envvar), read-only
//
// Reads go through a merged view in which environment beats local and local
// beats global, key by key for nested mappings. Writes go to one of the two
// file layers and are persisted immediately.
//
// Before the layers are read, <cwd>/.env is hoisted into the environment
// (see package envfile), so AIO_* variables may come from that file.
//
// # Key Paths
//
// Values are addressed with dotted key paths:
//
//	"runtime.namespace"   -> doc["runtime"]["namespace"]
//	"hooks.0"             -> first element of doc["hooks"]
//	""                    -> entire document
//
// # Layer Formats
//
// Each file layer carries a Format selecting its codec: FormatYAML (the
// default, relaxed: comments and JSON syntax are accepted) or FormatJSON.
//
// # Example
//
//	store := config.Load()
//	namespace := store.Get("runtime.namespace")
//	err := store.SetLocal("runtime.namespace", "dev")
//
// A Store performs no locking. Callers sharing one across goroutines must
// serialize access, and separate processes writing the same file race with
// the last write winning.
package config
