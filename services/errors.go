package services

import "errors"

var (
	// ErrScheduleAlreadyPublished guards the published schedule against
	// regeneration; unpublish first, then regenerate.
	ErrScheduleAlreadyPublished = errors.New("schedule is published and cannot be regenerated")

	// ErrNotVersusSchedule rejects round submissions against schedules
	// whose mode has no bracket to advance.
	ErrNotVersusSchedule = errors.New("schedule does not use the VERSUS competition mode")
)
