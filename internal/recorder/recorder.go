package recorder

// GroupCount is the record count for one group in a run.
type GroupCount struct {
	Group string
	Count int
}

// RunRecord summarizes one fetch run for the history database.
type RunRecord struct {
	GeneratedAt  string
	TotalRecords int
	Groups       []GroupCount
	Omitted      []string
	DurationMS   int64
}

// Recorder persists run history for operator analysis.
type Recorder interface {
	RecordRun(rec *RunRecord) error
	Close() error
}
