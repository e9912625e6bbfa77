package cli

import (
	"errors"

	"github.com/jacksmith/inv/internal/stock"
)

// ResultError reports a stock mutation that was rejected or found nothing
// to remove. The store has already logged it; the CLI turns it into a
// non-zero exit.
type ResultError struct {
	Result stock.Result
}

func (e *ResultError) Error() string {
	if e.Result.Err == nil {
		return string(e.Result.Outcome)
	}
	return e.Result.Err.Error()
}

func (e *ResultError) Unwrap() error {
	return e.Result.Err
}

// CheckResult returns a *ResultError when r did not apply.
func CheckResult(r stock.Result) error {
	if r.Applied() {
		return nil
	}
	return &ResultError{Result: r}
}

// FormatError returns a user-friendly error message.
// It prefixes the error with "error: " for consistent CLI output.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	return "error: " + err.Error()
}

// ExitCode maps an error to a process exit status: 0 for nil, 2 for
// rejected input, 1 for everything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if stock.IsValidation(err) {
		return 2
	}
	var re *ResultError
	if errors.As(err, &re) && re.Result.Outcome == stock.OutcomeRejected {
		return 2
	}
	return 1
}

// FormatOutcome colors a mutation outcome for terminal display.
func FormatOutcome(o stock.Outcome) string {
	label := "[" + string(o) + "]"
	switch o {
	case stock.OutcomeAdded, stock.OutcomeRemoved:
		return Green(label)
	case stock.OutcomeDepleted:
		return Yellow(label)
	case stock.OutcomeRejected:
		return Red(label)
	default:
		return Gray(label)
	}
}
