// Package filesystem provides the filesystem abstraction used by bbgen.
//
// License digests read project files and the recipe writer creates output
// files; both go through FileSystemProvider so they can be tested against an
// in-memory tree.
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing
//
// Missing paths are reported with errors that satisfy errors.Is(err, fs.ErrNotExist)
// in both implementations.
package filesystem
