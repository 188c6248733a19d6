package diag

import "github.com/pkg/errors"

// InvariantViolation is panicked when a pass observes a state the earlier
// passes were supposed to have ruled out already (e.g. an Unresolved slot
// reaching a later pass, or a HIR node outside the closed set a type switch
// expects). It is never recovered from inside normal compilation; pipeline.Run
// only catches it at its boundary (via Recover) to attach a stack trace for bug reports,
// since reaching one means the pipeline itself is wrong, not the input
// program.
type InvariantViolation struct {
	cause error
}

func (v *InvariantViolation) Error() string { return v.cause.Error() }
func (v *InvariantViolation) Unwrap() error { return v.cause }

// Bug panics with an InvariantViolation carrying a stack trace, for internal
// consistency checks that should be unreachable given a well-formed pipeline.
func Bug(format string, args ...any) {
	panic(&InvariantViolation{cause: errors.Errorf(format, args...)})
}

// Recover, deferred by a pass runner, turns an InvariantViolation panic into
// an error return with its stack trace preserved. Panics of any other kind
// are re-raised; only our own invariant-checking panics are a pipeline bug
// worth downgrading to an error value.
func Recover(errOut *error) {
	r := recover()
	if r == nil {
		return
	}
	if iv, ok := r.(*InvariantViolation); ok {
		*errOut = errors.WithStack(iv)
		return
	}
	panic(r)
}
