package scheduling

import "errors"

// Configuration errors are surfaced before any session is built;
// generation is all-or-nothing.
var (
	ErrUnknownMode       = errors.New("unknown competition mode")
	ErrMissingWODMapping = errors.New("no workout mapped for bracket round")
	ErrInvalidRoundCount = errors.New("bracket round count must be positive")
	ErrWODNotFound       = errors.New("mapped workout not found in roster")
)

// Progression errors reject a submission without mutating any state.
var (
	ErrRoundNotFound   = errors.New("round has no scheduled sessions")
	ErrIncompleteRound = errors.New("submission does not cover every match of the round")
	ErrImmutableRound  = errors.New("round already recorded with different results")
)
