package trace

import (
	"testing"
)

func TestSimulationTrace_RecordFault_AppendsRecord(t *testing.T) {
	// GIVEN a trace configured for faults
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelFaults})

	// WHEN a fault record is recorded
	st.RecordFault(FaultRecord{Index: 3, Page: 7, Frame: 1, Evicted: 2})

	// THEN the trace contains one fault record with correct data
	if len(st.Faults) != 1 {
		t.Fatalf("expected 1 fault, got %d", len(st.Faults))
	}
	if st.Faults[0].Page != 7 || st.Faults[0].Frame != 1 {
		t.Errorf("unexpected record %+v", st.Faults[0])
	}
}

func TestSimulationTrace_MultipleRecords_PreservesOrder(t *testing.T) {
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelFaults})

	st.RecordFault(FaultRecord{Index: 0, Page: 1, Frame: 0, Evicted: NoPage})
	st.RecordFault(FaultRecord{Index: 1, Page: 2, Frame: 1, Evicted: NoPage})
	st.RecordFault(FaultRecord{Index: 5, Page: 3, Frame: 0, Evicted: 1})

	if len(st.Faults) != 3 {
		t.Fatalf("expected 3 faults, got %d", len(st.Faults))
	}
	for i, want := range []int{0, 1, 5} {
		if st.Faults[i].Index != want {
			t.Errorf("record %d: index %d, want %d", i, st.Faults[i].Index, want)
		}
	}
}

func TestSimulationTrace_Limit_StopsStoringButKeepsCounting(t *testing.T) {
	// GIVEN a trace limited to two stored records
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelFaults, Limit: 2})

	// WHEN five faults are recorded
	for i := 0; i < 5; i++ {
		st.RecordFault(FaultRecord{Index: i, Page: i, Frame: 0, Evicted: i - 1})
	}

	// THEN only two are stored and three are reported dropped
	if len(st.Faults) != 2 {
		t.Errorf("expected 2 stored records, got %d", len(st.Faults))
	}
	if st.Dropped() != 3 {
		t.Errorf("expected 3 dropped, got %d", st.Dropped())
	}
	if got := Summarize(st).TotalFaults; got != 5 {
		t.Errorf("expected summary total 5, got %d", got)
	}
}

func TestTraceConfig_Enabled(t *testing.T) {
	if (TraceConfig{}).Enabled() {
		t.Error("zero config should be disabled")
	}
	if (TraceConfig{Level: TraceLevelNone}).Enabled() {
		t.Error("none should be disabled")
	}
	if !(TraceConfig{Level: TraceLevelFaults}).Enabled() {
		t.Error("faults should be enabled")
	}
}

func TestIsValidTraceLevel_ValidLevels(t *testing.T) {
	tests := []struct {
		level string
		valid bool
	}{
		{"none", true},
		{"faults", true},
		{"", true}, // empty defaults to none
		{"decisions", false},
		{"foobar", false},
		{"NONE", false}, // case-sensitive
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			if got := IsValidTraceLevel(tt.level); got != tt.valid {
				t.Errorf("IsValidTraceLevel(%q) = %v, want %v", tt.level, got, tt.valid)
			}
		})
	}
}
