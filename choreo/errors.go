package choreo

import "errors"

// ErrMissingElements is returned by New when the begin control, landing screen or
// experience screen is absent. Nothing is scheduled in that case.
var ErrMissingElements = errors.New("essential elements missing")
