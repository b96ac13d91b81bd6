// Package files groups the filesystem backends used by pathname.
//
// The filesystem subpackage implements pathname.Probe over afero: an OS-backed
// probe for the CLI and an in-memory probe for tests and examples. Tree
// operations in internal/tree never touch the host directly; they only call
// the six Probe primitives.
package files
