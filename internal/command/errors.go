package command

import "fmt"

// ErrorKind classifies command failures. None of them are process-fatal; the
// adapter reports each to the user and keeps handling events.
type ErrorKind int

const (
	// ErrValidation means the caller-supplied argument violates the
	// command's precondition.
	ErrValidation ErrorKind = iota
	// ErrUnknownCommand means no command matches the given name.
	ErrUnknownCommand
	// ErrRequest means a call to an external service failed.
	ErrRequest
	// ErrInternal covers everything that should not happen.
	ErrInternal
)

func (k ErrorKind) String() string {
	switch k {
	case ErrValidation:
		return "validation"
	case ErrUnknownCommand:
		return "unknown command"
	case ErrRequest:
		return "request"
	default:
		return "internal"
	}
}

// CommandError is a typed command failure. Message is user-facing; Err, when
// set, is the underlying cause and is only logged.
type CommandError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *CommandError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *CommandError) Unwrap() error { return e.Err }

// Validationf builds an ErrValidation error with a user-facing message.
func Validationf(format string, args ...any) *CommandError {
	return &CommandError{Kind: ErrValidation, Message: fmt.Sprintf(format, args...)}
}

// UnknownCommandf builds an ErrUnknownCommand error naming the command.
func UnknownCommandf(name string) *CommandError {
	return &CommandError{Kind: ErrUnknownCommand, Message: fmt.Sprintf("unknown command **%s**", name)}
}

// Requestf builds an ErrRequest error wrapping the failed call.
func Requestf(err error, format string, args ...any) *CommandError {
	return &CommandError{Kind: ErrRequest, Message: fmt.Sprintf(format, args...), Err: err}
}

// Internalf builds an ErrInternal error wrapping the cause.
func Internalf(err error, format string, args ...any) *CommandError {
	return &CommandError{Kind: ErrInternal, Message: fmt.Sprintf(format, args...), Err: err}
}
