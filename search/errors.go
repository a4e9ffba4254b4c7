package search

import "errors"

// ErrStopEnumeration is returned by a FindAllPositiveRankV0ReducedDivisors
// callback to stop enumeration early without signaling a failure.
var ErrStopEnumeration = errors.New("search: enumeration stopped by callback")
