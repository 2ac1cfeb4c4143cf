// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors to enable proper
//              prioritization and logging decisions. Ownership-corruption
//              class errors rank highest because they indicate memory
//              accounting has already gone wrong.
// Author: danielbradley
// Version: v0.1.0
// Created: 2026-08-24
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-24 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core functionality
	// Examples: invalid input, a missing optional configuration key
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	// Examples: unparseable configuration file, unbalanced builder usage
	SeverityMedium

	// SeverityHigh indicates a serious error that significantly impacts functionality
	// Examples: arena exhaustion mid-build, operations on destroyed nodes
	SeverityHigh

	// SeverityCritical indicates the process state can no longer be trusted
	// Examples: double free, double release of an owned token
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines the appropriate severity level for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	// Memory accounting is provably corrupted
	case CodeDoubleFree, CodeDoubleRelease:
		return SeverityCritical

	// High severity errors
	case CodeInternal, CodeAllocationFailed, CodeArenaExhausted, CodeNotAllocated,
		CodeOwnershipViolation, CodeNodeDestroyed, CodeNodeAttached:
		return SeverityHigh

	// Medium severity errors
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeTreeUnbalanced, CodeInvalidOperation:
		return SeverityMedium

	// Low severity errors
	case CodeInvalidInput, CodeNotFound,
		CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
