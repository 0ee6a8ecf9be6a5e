package bus

import (
	"context"
	"errors"
)

// Remote is the command side of the bus: it accepts a named command with
// parameters and returns once the controller acknowledged or rejected it.
// Callers bound every invocation with a context deadline; a timeout or
// rejection is surfaced to the user, never retried.
type Remote interface {
	Command(ctx context.Context, name string, params map[string]interface{}) error
}

// ErrRejected is returned by a Remote when the command is not valid in the
// controller's current state.
var ErrRejected = errors.New("command rejected")

// ErrUnknownCommand is returned by a Remote for a command name it does not
// implement.
var ErrUnknownCommand = errors.New("unknown command")
