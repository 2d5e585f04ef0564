// Package file provides the filesystem FileStore for the config package.
//
// Every call goes to the filesystem; nothing is cached, so a reload always
// observes the current file contents. Writes create missing parent
// directories and replace the whole file.
//
// Usage:
//
//	store := file.NewStore()
//	text, err := store.ReadText("/home/me/.config/aio")
//	err = store.WriteText("/home/me/.config/aio", "a: 1\n")
//
// Error Handling:
//   - Errors include the filepath for easier debugging
//   - A missing file is reported with an error matching fs.ErrNotExist
//   - Use errors.Is(err, file.ErrPathIsDirectory) to check for directory errors
//
// There is no locking: concurrent writers from different processes race and
// the last write wins.
package file
