// Package trace provides page-fault trace recording for policy analysis.
// This package has no dependencies on sim/ or its policy packages; it stores pure data types.
package trace

// NoPage marks the Evicted field of a fault that loaded into an empty frame.
const NoPage = -1

// FaultRecord captures a single page fault and the frame it was served from.
type FaultRecord struct {
	Index   int  // position in the reference string
	Page    int  // page that faulted
	Frame   int  // frame the page was loaded into
	Evicted int  // page displaced from Frame, or NoPage for a cold load
	WarmUp  bool // fault occurred while Optimal was still filling frames
}
