package dispatcherrors

import "fmt"

// ArgumentArrayLimitExceededError is returned when a call site's actual
// argument count exceeds the arity limit of 12. The arity gate runs before
// any frontend interaction beyond counting.
type ArgumentArrayLimitExceededError struct {
	Got, Limit int
}

func (e *ArgumentArrayLimitExceededError) Error() string {
	return fmt.Sprintf("%s [%s]: got %d arguments, limit is %d", Description(CodeArgumentArrayLimitExceeded), CodeArgumentArrayLimitExceeded, e.Got, e.Limit)
}

// Code implements the coded-error convention used by the reporter.
func (e *ArgumentArrayLimitExceededError) Code() string { return CodeArgumentArrayLimitExceeded }

// OverloadingNoMatchError is returned when no candidate in a set produced a
// fully possible weight vector.
type OverloadingNoMatchError struct {
	SetName string
	Arity   int
}

func (e *OverloadingNoMatchError) Error() string {
	return fmt.Sprintf("%s [%s]: %s(<%d args>)", Description(CodeOverloadingNoMatch), CodeOverloadingNoMatch, e.SetName, e.Arity)
}

func (e *OverloadingNoMatchError) Code() string { return CodeOverloadingNoMatch }

// OverloadingAmbiguityError is returned when two or more non-identical
// candidates tied as best.
type OverloadingAmbiguityError struct {
	SetName    string
	Candidates []string
}

func (e *OverloadingAmbiguityError) Error() string {
	return fmt.Sprintf("%s [%s]: %s could refer to: %v", Description(CodeOverloadingAmbiguity), CodeOverloadingAmbiguity, e.SetName, e.Candidates)
}

func (e *OverloadingAmbiguityError) Code() string { return CodeOverloadingAmbiguity }

// Coded is implemented by every error this package defines, letting a
// reporter format any of them uniformly.
type Coded interface {
	error
	Code() string
}

var (
	_ Coded = (*ArgumentArrayLimitExceededError)(nil)
	_ Coded = (*OverloadingNoMatchError)(nil)
	_ Coded = (*OverloadingAmbiguityError)(nil)
)
