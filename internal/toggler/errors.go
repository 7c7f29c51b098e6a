package toggler

import (
	"fmt"
)

// Kind classifies why an invocation failed.
type Kind int

const (
	// KindInvalidEvent means a required field is missing or the schedule ARN is malformed.
	KindInvalidEvent Kind = iota + 1
	// KindUserNotFound means the username matched no user in the identity store.
	KindUserNotFound
	// KindUnknownAction means the action is neither create nor delete.
	KindUnknownAction
	// KindService means one of the AWS calls failed.
	KindService
)

func (k Kind) String() string {
	switch k {
	case KindInvalidEvent:
		return "invalid event"
	case KindUserNotFound:
		return "user not found"
	case KindUnknownAction:
		return "unknown action"
	case KindService:
		return "service error"
	default:
		return "unknown"
	}
}

// Fault is the failure result of an invocation.
type Fault struct {
	Kind Kind
	// Op is the step which failed.
	Op  string
	Err error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%s: %s: %s", f.Op, f.Kind, f.Err)
}

func (f *Fault) Unwrap() error {
	return f.Err
}

// Format supports "%+v" to print the stack trace of the cause.
func (f *Fault) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		fmt.Fprintf(s, "%s: %s: %+v", f.Op, f.Kind, f.Err)
		return
	}
	fmt.Fprint(s, f.Error())
}

func fault(kind Kind, op string, err error) *Fault {
	return &Fault{
		Kind: kind,
		Op:   op,
		Err:  err,
	}
}
