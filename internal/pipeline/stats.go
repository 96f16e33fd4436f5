package pipeline

// RunStats tracks aggregate counters across a batch run. The encoder's exit
// status is not observed, so Converted counts dispatched encodes, not
// verified successes.
type RunStats struct {
	Total           int
	Current         int
	Converted       int
	TimestampNamed  int // outputs named from creation_time metadata
	FallbackNamed   int // outputs named from the original filename stem
	TotalInputBytes int64
}
