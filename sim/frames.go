package sim

import "fmt"

const (
	// EmptyFrame marks a frame slot holding no page.
	EmptyFrame = -1
	// NotFound is returned by Locate when the page is not resident.
	NotFound = -1
)

// FrameTable is a fixed-capacity set of physical frames owned by a single
// simulation run. Every replacement policy tests residency through Locate so
// that fault counts stay comparable across policies.
type FrameTable struct {
	pages []int
}

// NewFrameTable creates a table of size empty frames.
// Returns an error wrapping ErrInvalidParameter when size < 1.
func NewFrameTable(size int) (*FrameTable, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: frame count must be >= 1, got %d", ErrInvalidParameter, size)
	}
	ft := &FrameTable{pages: make([]int, size)}
	ft.Reset()
	return ft, nil
}

// Locate returns the index of the frame holding page, or NotFound.
func (ft *FrameTable) Locate(page int) int {
	for i, p := range ft.pages {
		if p == page {
			return i
		}
	}
	return NotFound
}

// Load places page in frame and returns the page it displaced
// (EmptyFrame if the slot was free).
func (ft *FrameTable) Load(frame, page int) int {
	evicted := ft.pages[frame]
	ft.pages[frame] = page
	return evicted
}

// Len returns the number of frames.
func (ft *FrameTable) Len() int {
	return len(ft.pages)
}

// Reset empties every frame.
func (ft *FrameTable) Reset() {
	for i := range ft.pages {
		ft.pages[i] = EmptyFrame
	}
}
