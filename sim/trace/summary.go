package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalFaults       int
	WarmUpFaults      int
	ColdLoads         int // faults served by an empty frame
	Evictions         int // faults that displaced a resident page
	StoredRecords     int
	FrameDistribution map[int]int // frame index → faults loaded into it
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		FrameDistribution: make(map[int]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalFaults = st.total
	summary.WarmUpFaults = st.warmUp
	summary.ColdLoads = st.coldLoads
	summary.Evictions = st.total - st.coldLoads
	summary.StoredRecords = len(st.Faults)
	for frame, n := range st.perFrame {
		summary.FrameDistribution[frame] = n
	}

	return summary
}
