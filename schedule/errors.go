package schedule

import "fmt"

// UnrecognizedLineError reports a business-hours line that survived
// normalization but did not match the window grammar. The restaurant's
// whole window list is abandoned; the line needs a rewrite-table fix, not a
// retry.
type UnrecognizedLineError struct {
	Line string
}

func (e *UnrecognizedLineError) Error() string {
	return fmt.Sprintf("unrecognized business-hours line: %q", e.Line)
}

// UnrecognizedTokenError reports regular-holiday text containing characters
// outside the closed-day token alphabet.
type UnrecognizedTokenError struct {
	Text string
}

func (e *UnrecognizedTokenError) Error() string {
	return fmt.Sprintf("unrecognized closed-day text: %q", e.Text)
}

// IntegrityError reports 無休 (never closed) coexisting with explicit
// closed-day tokens; that combination indicates a normalization-table bug
// or an unanticipated source idiom.
type IntegrityError struct {
	Text   string
	Tokens ClosedDaySet
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("closed-day text %q marks never-closed but also lists %v", e.Text, e.Tokens)
}
