package constants

import "time"

// Authentication
const (
	// PasswordLength is the exact required password length. The product
	// requires exactly eight characters, not a minimum.
	PasswordLength = 8

	// TokenTTL is the absolute lifetime of an issued access token.
	TokenTTL = 24 * time.Hour

	// ContextKeySubject is the gin context key holding the authenticated
	// user's unique ID.
	ContextKeySubject = "subject"
)

// Task defaults
const (
	DefaultUrgency    = 5
	DefaultComplexity = 5
	DefaultTaskSize   = 5
	DefaultEfficiency = 1.0
	DefaultDepartment = "General"
)

// Suggestion thresholds
const (
	// WorkloadTaskThreshold is the number of open assigned tasks above
	// which a workload suggestion is emitted.
	WorkloadTaskThreshold = 5

	// DeadlineWarningDays is the inclusive window, in days, for the
	// upcoming-deadline suggestion.
	DeadlineWarningDays = 3
)
