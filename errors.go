package logfox

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrPoisoned is the cause of the panic raised by any [State] operation after a panic unwound while the State was locked.
// A poisoned State never logs again.
var ErrPoisoned = errors.New("logfox: state poisoned by a panic during dispatch")

// SinkPanic reports a panic recovered from a sink wrapped with [Recover].
type SinkPanic struct {
	Value any
	Msg   Message
}

func (p *SinkPanic) Error() string {
	return fmt.Sprintf("logfox: sink panicked on [%s] %s: %v", p.Msg.Namespace, p.Msg.Level, p.Value)
}

// Unwrap returns the recovered value when it is an error.
func (p *SinkPanic) Unwrap() error {
	if err, isErr := p.Value.(error); isErr {
		return err
	}
	return nil
}

func poisoned(s *State) error {
	return errors.Wrapf(ErrPoisoned, "state %s", s.id)
}
