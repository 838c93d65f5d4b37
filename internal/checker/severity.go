package checker

import "fmt"

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	// SeverityInfo is for advisory diagnostics.
	SeverityInfo Severity = iota
	// SeverityWarning is for diagnostics that deserve a review.
	SeverityWarning
	// SeverityError is for diagnostics that make the catalog wrong.
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	}
	return "unknown"
}

// ParseSeverity converts a user-supplied severity name.
func ParseSeverity(name string) (Severity, error) {
	switch name {
	case "info":
		return SeverityInfo, nil
	case "warning":
		return SeverityWarning, nil
	case "error":
		return SeverityError, nil
	}
	return SeverityInfo, fmt.Errorf("invalid severity: %s", name)
}
