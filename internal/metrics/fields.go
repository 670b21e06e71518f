package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod  = "method"
	AttrPath    = "path"
	AttrStatus  = "status"
	AttrOutcome = "outcome"
	AttrSource  = "source"
)

// Guess outcomes recorded by RecordGuess.
const (
	OutcomeAccepted    = "accepted"
	OutcomeUnknownTeam = "unknown_team"
	OutcomeSessionOver = "session_over"
	OutcomeError       = "error"
)
