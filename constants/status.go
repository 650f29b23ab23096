package constants

// RunStatus is the canonical status for rows in parse_run.
type RunStatus string

// Stable values (store these exact strings in DB).
const (
	RunStatusQueued       RunStatus = "QUEUED"        // accepted, waiting for a worker
	RunStatusRunning      RunStatus = "RUNNING"       // in progress
	RunStatusSuccess      RunStatus = "SUCCESS"       // validated result produced
	RunStatusManualReview RunStatus = "MANUAL_REVIEW" // retries exhausted, needs a human
	RunStatusFailed       RunStatus = "FAILED"        // terminal failure, no usable result
)

// RunStatuses lists every accepted status value, for schema-level enum checks.
var RunStatuses = []string{
	string(RunStatusQueued),
	string(RunStatusRunning),
	string(RunStatusSuccess),
	string(RunStatusManualReview),
	string(RunStatusFailed),
}
