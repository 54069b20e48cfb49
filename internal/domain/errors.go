package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidConfig = errors.New("invalid config")
	ErrExecution     = errors.New("execution error")
)

// ErrorKind is a coarse-grained categorization for infrastructure errors.
type ErrorKind string

const (
	KindNotFound      ErrorKind = "not_found"
	KindInvalidConfig ErrorKind = "invalid_config"
	KindExecution     ErrorKind = "execution"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// ValidationKind identifies why a birth date was rejected.
type ValidationKind string

const (
	KindMissingFields ValidationKind = "missing_fields"
	KindNotANumber    ValidationKind = "not_a_number"
	KindYearTooEarly  ValidationKind = "year_too_early"
	KindFutureDate    ValidationKind = "future_date"
	KindInvalidMonth  ValidationKind = "invalid_month"
	KindInvalidDay    ValidationKind = "invalid_day"
)

// DayReason refines KindInvalidDay.
type DayReason string

const (
	DayNotLeapYear DayReason = "not_leap_year"
	DayOutOfRange  DayReason = "out_of_range"
)

// ValidationError is the typed failure outcome of ValidateAndResolve.
// Its Error() text is the user-facing message.
type ValidationError struct {
	Kind ValidationKind

	// Set for KindInvalidDay only.
	Reason  DayReason
	Year    int
	Month   int
	MaxDays int
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}

	switch e.Kind {
	case KindMissingFields:
		return "Please fill in all fields (Day, Month, and Year)"
	case KindNotANumber:
		return "Please enter valid numbers"
	case KindYearTooEarly:
		return fmt.Sprintf("Please enter a year after %d", MinYear)
	case KindFutureDate:
		return "You cannot enter a future date! Please enter your actual birth date."
	case KindInvalidMonth:
		return "Month must be between 1 and 12"
	case KindInvalidDay:
		if e.Reason == DayNotLeapYear {
			return fmt.Sprintf("%d is not a leap year. February only has 28 days in %d", e.Year, e.Year)
		}
		return fmt.Sprintf("Invalid date! %s only has %d days", MonthName(e.Month), e.MaxDays)
	default:
		return "invalid birth date"
	}
}

// IsValidation reports whether err is (or wraps) a ValidationError of the given kind.
func IsValidation(err error, kind ValidationKind) bool {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Kind == kind
	}
	return false
}
