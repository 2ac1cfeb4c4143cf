// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across the IxCompiler foundation. The codes
//              cover allocation failures, tree-ownership violations, and
//              configuration problems.
// Author: danielbradley
// Version: v0.1.0
// Created: 2026-08-24
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-24 v0.1.0: Initial implementation with core error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes for the IxCompiler foundation
const (
	// Generic codes
	CodeUnknown          Code = "UNKNOWN"
	CodeInternal         Code = "INTERNAL"
	CodeNotFound         Code = "NOT_FOUND"
	CodeInvalidInput     Code = "INVALID_INPUT"
	CodeInvalidOperation Code = "INVALID_OPERATION"

	// Allocation and arena accounting
	CodeAllocationFailed Code = "ALLOCATION_FAILED"
	CodeArenaExhausted   Code = "ARENA_EXHAUSTED"
	CodeDoubleFree       Code = "DOUBLE_FREE"
	CodeNotAllocated     Code = "NOT_ALLOCATED"

	// Tree lifecycle and ownership
	CodeOwnershipViolation Code = "OWNERSHIP_VIOLATION"
	CodeDoubleRelease      Code = "DOUBLE_RELEASE"
	CodeNodeDestroyed      Code = "NODE_DESTROYED"
	CodeNodeAttached       Code = "NODE_ATTACHED"
	CodeTreeUnbalanced     Code = "TREE_UNBALANCED"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeInvalidOperation,
		CodeAllocationFailed, CodeArenaExhausted, CodeDoubleFree, CodeNotAllocated,
		CodeOwnershipViolation, CodeDoubleRelease, CodeNodeDestroyed, CodeNodeAttached, CodeTreeUnbalanced,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeAllocationFailed, CodeArenaExhausted, CodeDoubleFree, CodeNotAllocated:
		return "allocation"
	case CodeOwnershipViolation, CodeDoubleRelease, CodeNodeDestroyed, CodeNodeAttached, CodeTreeUnbalanced:
		return "tree"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange:
		return "validation"
	default:
		return "generic"
	}
}
