package sim

import "errors"

// ErrInvalidParameter is wrapped by every parameter rejection in the
// generator, the frame table and the replacement policies. Callers match it
// with errors.Is; no partial result accompanies it.
var ErrInvalidParameter = errors.New("invalid parameter")
