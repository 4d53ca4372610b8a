package config

import "time"

// Timer cadences.
const (
	// TickInterval is the engine's scheduling cadence. Coarse on purpose;
	// remaining time is derived from the deadline, not from tick counts.
	TickInterval = 100 * time.Millisecond

	// NotifyInterval is the minimum gap between throttled status refreshes.
	NotifyInterval = time.Second
)

// Editor limits.
const (
	MaxSequenceName  = 60
	MaxIntervalName  = 40
	MaxIntervalCount = 64
)

// Session outcomes.
const (
	OutcomeCompleted = "completed"
	OutcomeStopped   = "stopped"
)

// Database/application settings.
const (
	AppName    = "rondo"
	DBFileName = "rondo.db"
)
