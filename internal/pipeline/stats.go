package pipeline

// RunStats tracks aggregate counters and byte totals across a batch run.
type RunStats struct {
	Found           int
	Current         int
	Analyzed        int
	Skipped         int
	Failed          int
	SamplesDropped  int
	TotalInputBytes int64
	Fatal           bool
}

// ExitCode maps the run outcome to a process exit code: 1 when the run was
// fatal (no inputs, nothing analyzed, or the report could not be written),
// 0 otherwise. Skips and per-file failures alone do not fail the run.
func (s *RunStats) ExitCode() int {
	if s.Fatal {
		return 1
	}
	return 0
}
