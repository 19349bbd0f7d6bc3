package app

import "fmt"

// Process exit codes. These are a stable contract for scripting callers and
// must not be renumbered.
const (
	ExitSuccess       = 0
	ExitNotGitRepo    = 1
	ExitStageFailed   = 2
	ExitNoChanges     = 3
	ExitAPIKeyMissing = 10
	ExitAPIKeyInvalid = 11
	ExitQuotaExceeded = 12
	ExitAPIError      = 13
	ExitCommitFailed  = 20
	ExitUnknownError  = 99
)

// ExitError is a terminal pipeline outcome carrying the process exit code and
// the short machine-readable error code shown on stderr.
type ExitError struct {
	Code    int
	ErrCode string
	Message string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("[%s] %s", e.ErrCode, e.Message)
}
