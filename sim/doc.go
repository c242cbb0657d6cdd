// Package sim provides the core types shared by the paging simulator.
//
// # Reading Guide
//
// Start with these files:
//   - reference.go: ReferenceString, the page trace every policy replays
//   - frames.go: FrameTable, the fixed set of physical frames and its lookup
//   - metrics.go: per-run fault counts and the text/JSON report
//
// # Architecture
//
// The sim package holds plain data types; behavior lives in sub-packages:
//   - sim/locality/: locality-model reference string generation
//   - sim/policy/: Optimal (bounded lookahead), FIFO, LRU and Second Chance
//   - sim/trace/: optional per-fault trace recording
//   - sim/experiment/: runs that generate once and replay every policy
//
// Randomness flows through PartitionedRNG (rng.go) so that a seed fully
// determines the reference string. Every rejected parameter wraps
// ErrInvalidParameter.
package sim
