package pathname

import (
	"io/fs"
	"time"
)

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess           = 0  // Operation completed successfully
	ExitGeneralError      = 1  // Unknown or unclassified error
	ExitUsageError        = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic             = 3  // Internal panic (unexpected crash)
	ExitConfigError       = 10 // Invalid configuration
	ExitNotFound          = 11 // Path does not exist
	ExitPermissionDenied  = 12 // Host refused access
	ExitNotADirectory     = 13 // Directory operation on a non-directory
	ExitDirectoryNotEmpty = 14 // Directory still had entries when removed
	ExitApprovalDenied    = 15 // User denied removal approval
)

const (
	// DefaultDirMode is the permission used for directories created by Create.
	DefaultDirMode fs.FileMode = 0o700

	// DefaultMaxConcurrentReads bounds in-flight directory listings in WalkAsync.
	// Zero means unbounded.
	DefaultMaxConcurrentReads = 64

	// DefaultForceApprovalCountdown is the countdown duration before forced removal proceeds.
	DefaultForceApprovalCountdown = 3 * time.Second

	// ConfigFileName is the project configuration file looked up in the working directory.
	ConfigFileName = "pathname.yaml"

	// EnvPrefix prefixes environment overrides, e.g. PATHNAME_MAX_CONCURRENT_READS.
	EnvPrefix = "PATHNAME"
)
