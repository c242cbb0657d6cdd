package trace

// TraceLevel controls the verbosity of fault tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelFaults captures every page fault a policy takes.
	TraceLevelFaults TraceLevel = "faults"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:   true,
	TraceLevelFaults: true,
	"":               true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
	Limit int // max stored records; 0 = unbounded. Counters ignore the limit.
}

// Enabled reports whether the config asks for any recording.
func (c TraceConfig) Enabled() bool {
	return c.Level == TraceLevelFaults
}

// SimulationTrace collects fault records for one policy run.
// A trace belongs to exactly one run and is not safe for concurrent use.
type SimulationTrace struct {
	Config TraceConfig
	Faults []FaultRecord

	total     int
	warmUp    int
	coldLoads int
	perFrame  map[int]int
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(config TraceConfig) *SimulationTrace {
	return &SimulationTrace{
		Config:   config,
		Faults:   make([]FaultRecord, 0),
		perFrame: make(map[int]int),
	}
}

// RecordFault counts a fault and stores its record while under the limit.
func (st *SimulationTrace) RecordFault(record FaultRecord) {
	st.total++
	if record.WarmUp {
		st.warmUp++
	}
	if record.Evicted == NoPage {
		st.coldLoads++
	}
	st.perFrame[record.Frame]++
	if st.Config.Limit == 0 || len(st.Faults) < st.Config.Limit {
		st.Faults = append(st.Faults, record)
	}
}

// Dropped returns the number of faults counted but not stored.
func (st *SimulationTrace) Dropped() int {
	return st.total - len(st.Faults)
}
