package pathname

import (
	"errors"
	"io/fs"
	"strings"
	"syscall"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error kinds using errors.Is().
//
// Example usage:
//
//	_, err := remover.Remove(ctx, root)
//	if errors.Is(err, pathname.ErrNotFound) {
//	    // Nothing to remove
//	}
var (
	// ErrNotFound indicates the path does not exist.
	ErrNotFound = errors.New("not found")

	// ErrPermissionDenied indicates the host refused access to the path.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrNotADirectory indicates a directory operation was applied to a non-directory.
	ErrNotADirectory = errors.New("not a directory")

	// ErrDirectoryNotEmpty indicates removal of a directory that still has entries.
	ErrDirectoryNotEmpty = errors.New("directory not empty")

	// ErrIO is the catch-all for host I/O failures.
	ErrIO = errors.New("i/o error")

	// ErrTypeChanged indicates a node's type changed between being walked and being acted upon.
	ErrTypeChanged = errors.New("node type changed during operation")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrApprovalDenied indicates the user denied approval for a destructive operation.
	ErrApprovalDenied = errors.New("approval denied")
)

// Kind categorizes a filesystem error.
type Kind string

const (
	KindNotFound          Kind = "not_found"
	KindPermissionDenied  Kind = "permission_denied"
	KindNotADirectory     Kind = "not_a_directory"
	KindDirectoryNotEmpty Kind = "directory_not_empty"
	KindIO                Kind = "io"
)

func (k Kind) sentinel() error {
	switch k {
	case KindNotFound:
		return ErrNotFound
	case KindPermissionDenied:
		return ErrPermissionDenied
	case KindNotADirectory:
		return ErrNotADirectory
	case KindDirectoryNotEmpty:
		return ErrDirectoryNotEmpty
	default:
		return ErrIO
	}
}

// Error is the structured error returned by probes and tree operations.
type Error struct {
	Op   string
	Path Path
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	b.WriteByte(' ')
	b.WriteString(e.Path.String())
	b.WriteString(": ")
	b.WriteString(string(e.Kind))
	if e.Err != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Err.Error())
		b.WriteByte(')')
	}
	return b.String()
}

// Unwrap returns the underlying host error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's kind, or an *Error of the same kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return target == e.Kind.sentinel()
}

// NewError builds an *Error with an explicit kind.
func NewError(op string, p Path, kind Kind, cause error) *Error {
	return &Error{Op: op, Path: p, Kind: kind, Err: cause}
}

// Classify wraps a host error into an *Error, deriving its kind.
// Errors that are already classified are returned unchanged.
func Classify(op string, p Path, err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return &Error{Op: op, Path: p, Kind: KindOf(err), Err: err}
}

// KindOf derives the kind of a host error.
func KindOf(err error) Kind {
	var e *Error
	switch {
	case errors.As(err, &e):
		return e.Kind
	case errors.Is(err, fs.ErrNotExist):
		return KindNotFound
	case errors.Is(err, fs.ErrPermission):
		return KindPermissionDenied
	case errors.Is(err, syscall.ENOTDIR):
		return KindNotADirectory
	case errors.Is(err, syscall.ENOTEMPTY):
		return KindDirectoryNotEmpty
	default:
		return KindIO
	}
}

// usageErrorPrefixes are the cobra/pflag messages that indicate CLI misuse.
var usageErrorPrefixes = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"required flag",
	"invalid argument",
	"missing required argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrApprovalDenied):
		return ExitApprovalDenied
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	case errors.Is(err, ErrPermissionDenied):
		return ExitPermissionDenied
	case errors.Is(err, ErrNotADirectory):
		return ExitNotADirectory
	case errors.Is(err, ErrDirectoryNotEmpty):
		return ExitDirectoryNotEmpty
	}

	errStr := err.Error()
	for _, prefix := range usageErrorPrefixes {
		if strings.HasPrefix(errStr, prefix) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
