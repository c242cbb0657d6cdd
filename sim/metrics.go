// Collects per-run fault counts for final reporting.

package sim

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/rs/xid"
)

// PolicyFaults is one policy's result over the shared reference string.
type PolicyFaults struct {
	Policy    string  `json:"policy"`
	Faults    int     `json:"faults"`
	FaultRate float64 `json:"fault_rate"` // faults / references
}

// Metrics aggregates the results of one run: one reference string replayed by
// every configured policy.
type Metrics struct {
	RunID           string  `json:"run_id"`
	Seed            int64   `json:"seed"`
	Pages           int     `json:"pages"`
	LocusWidth      int     `json:"locus_width"`
	Dwell           int     `json:"dwell"`
	JumpProbability float64 `json:"jump_probability"`
	Length          int     `json:"length"`
	Frames          int     `json:"frames"`
	Lookahead       int     `json:"lookahead"`

	Results []PolicyFaults `json:"results"`

	SimulationDurationS float64 `json:"simulation_duration_s"` // wall clock; not deterministic
}

// NewMetrics creates an empty Metrics tagged with a fresh run ID.
func NewMetrics() *Metrics {
	return &Metrics{
		RunID:   xid.New().String(),
		Results: make([]PolicyFaults, 0),
	}
}

// Record appends a policy result. Order of calls is the reporting order.
func (m *Metrics) Record(policy string, faults int) {
	rate := 0.0
	if m.Length > 0 {
		rate = float64(faults) / float64(m.Length)
	}
	m.Results = append(m.Results, PolicyFaults{Policy: policy, Faults: faults, FaultRate: rate})
}

// Faults returns the fault count recorded for policy.
func (m *Metrics) Faults(policy string) (int, bool) {
	for _, r := range m.Results {
		if r.Policy == policy {
			return r.Faults, true
		}
	}
	return 0, false
}

// Finish stamps the wall-clock duration measured from startTime.
func (m *Metrics) Finish(startTime time.Time) {
	m.SimulationDurationS = time.Since(startTime).Seconds()
}

// displayNames maps registry names onto report labels.
var displayNames = map[string]string{
	"optimal":       "Optimal",
	"fifo":          "FIFO",
	"lru":           "LRU",
	"second-chance": "Second Chance",
}

// DisplayName returns the report label for a policy name.
func DisplayName(policy string) string {
	if name, ok := displayNames[policy]; ok {
		return name
	}
	return policy
}

// Print writes the line-oriented report, one policy per line.
func (m *Metrics) Print(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "Page faults:"); err != nil {
		return err
	}
	for _, r := range m.Results {
		if _, err := fmt.Fprintf(w, "%s: %d\n", DisplayName(r.Policy), r.Faults); err != nil {
			return err
		}
	}
	return nil
}

// SaveResults writes the report in the given format ("text" or "json").
func (m *Metrics) SaveResults(w io.Writer, format string) error {
	switch format {
	case "", "text":
		return m.Print(w)
	case "json":
		data, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling metrics: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	default:
		return fmt.Errorf("%w: unknown output format %q; valid: text, json", ErrInvalidParameter, format)
	}
}
