package dispatch

// Policy decides what a failed dispatch returns to the caller.
type Policy int

const (
	// Propagate returns every failure to the caller.
	Propagate Policy = iota
	// FallbackOnUpstream masks failures of the provider call itself; a failed
	// token exchange still reaches the caller.
	FallbackOnUpstream
	// FallbackAlways masks every failure with fallback data.
	FallbackAlways
)

func (p Policy) String() string {
	switch p {
	case Propagate:
		return "propagate"
	case FallbackOnUpstream:
		return "fallback_on_upstream"
	case FallbackAlways:
		return "fallback_always"
	default:
		return "unknown"
	}
}

// FallsBack reports whether a failure at stage is replaced by fallback data.
func (p Policy) FallsBack(stage Stage) bool {
	switch p {
	case FallbackAlways:
		return true
	case FallbackOnUpstream:
		return stage == StageUpstream || stage == StageNormalize
	default:
		return false
	}
}
