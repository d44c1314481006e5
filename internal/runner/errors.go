package runner

import "errors"

// ErrTargetNotFound is returned when the target path does not exist at
// invocation time. No subprocess is spawned in that case.
var ErrTargetNotFound = errors.New("target path does not exist")

// TimeoutExitCode is the sentinel exit code recorded when an invocation is
// killed for exceeding its timeout. A child process cannot produce it itself.
const TimeoutExitCode = -1
