// Package filesystem provides Probe implementations over afero filesystems.
//
// A Probe answers single-node questions (existence, type, listing) and
// performs single-node mutations (create one directory, remove one file or
// one empty directory). Tree operations in internal/tree are composed
// entirely from these primitives.
//
// Implementations:
//   - OSProbe: Production implementation over the host filesystem (afero.OsFs)
//   - MemoryProbe: In-memory implementation for testing (afero.MemMapFs)
//   - Async: Non-blocking wrapper delivering each primitive's result on a channel
//
// Every error returned is a *pathname.Error, so callers can match with
// errors.Is(err, pathname.ErrNotFound) and friends.
package filesystem
