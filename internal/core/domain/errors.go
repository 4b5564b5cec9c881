package domain

import "go.trai.ch/zerr"

// Sentinel errors for every fatal condition the core recognizes. Each is
// raised with zerr.With metadata at the call site and printed with "%+v"
// at the program boundary, which is why the message text stays terse here.
var (
	// ErrMissingRuleFile is raised when the requested rule file does not exist.
	ErrMissingRuleFile = zerr.New("rule file not found")

	// ErrDuplicateRule is raised when a rule name appears twice in the parsed input.
	ErrDuplicateRule = zerr.New("duplicate rule name")

	// ErrUnknownDependency is raised when a dep entry does not match any rule name.
	ErrUnknownDependency = zerr.New("unknown dependency")

	// ErrUnknownPhony is raised when a .PHONY name does not match any rule.
	ErrUnknownPhony = zerr.New("unknown phony target")

	// ErrUnknownTarget is raised when the requested target is not in the graph.
	ErrUnknownTarget = zerr.New("unknown target")

	// ErrCacheMissing is raised when the graph cache file does not exist.
	ErrCacheMissing = zerr.New("graph cache not found")

	// ErrCacheEmpty is raised when the graph cache file exists but is empty.
	ErrCacheEmpty = zerr.New("graph cache is empty")

	// ErrCacheCorrupt is raised when the cache cannot be decoded: short reads,
	// a length prefix exceeding the remaining buffer, or trailing bytes.
	ErrCacheCorrupt = zerr.New("graph cache corrupted")

	// ErrCacheVersionMismatch is raised when the cache's version field does
	// not match the version this build expects.
	ErrCacheVersionMismatch = zerr.New("graph cache version mismatch")

	// ErrSizeMismatch is raised when a decoded graph's per-node arrays disagree in length.
	ErrSizeMismatch = zerr.New("graph cache size mismatch")

	// ErrEncodeOverflow is raised when a value's length exceeds what a u32 prefix can hold.
	ErrEncodeOverflow = zerr.New("value too large to encode")

	// ErrCommandFailed is raised when a worker reports a non-zero exit code.
	ErrCommandFailed = zerr.New("command failed")

	// ErrCycleDetected is raised when the needed subgraph contains a cycle.
	ErrCycleDetected = zerr.New("cycle detected in dependency graph")

	// ErrDependencyOutputMissing is raised when, during a staleness check, the
	// target side has no readable modification time after its existence was
	// already confirmed — an internal inconsistency rather than a normal miss.
	ErrDependencyOutputMissing = zerr.New("dependency output missing")
)
