package domain

// ArtifactStatus classifies an on-disk artifact against a freshly generated one.
type ArtifactStatus uint8

const (
	// StatusMissing means the output file does not exist or cannot be read.
	StatusMissing ArtifactStatus = iota
	// StatusUpToDate means the output is byte-identical to the fresh rendering.
	StatusUpToDate
	// StatusStale means the output carries a valid signature but lists different files.
	StatusStale
	// StatusTampered means the output's signature does not match its content.
	StatusTampered
)

// String returns the status name.
func (s ArtifactStatus) String() string {
	switch s {
	case StatusMissing:
		return "missing"
	case StatusUpToDate:
		return "up-to-date"
	case StatusStale:
		return "stale"
	case StatusTampered:
		return "tampered"
	default:
		return "unknown"
	}
}

// Result reports the outcome of one generation run.
type Result struct {
	Job       string
	Output    string
	Files     int
	Signature string
	// Written is false when the on-disk artifact was already identical.
	Written bool
}

// WatchPhase is the state of a build lifecycle.
type WatchPhase uint8

const (
	// PhaseIdle means no watch session is active; pre-build hooks generate.
	PhaseIdle WatchPhase = iota
	// PhaseWatchActive means a watch session owns generation; pre-build hooks are skipped.
	PhaseWatchActive
)

// String returns the phase name.
func (p WatchPhase) String() string {
	if p == PhaseWatchActive {
		return "watch-active"
	}
	return "idle"
}
