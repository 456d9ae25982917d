package queue

import (
	"errors"
	"fmt"

	"github.com/qmuntal/stateless"

	domain "github.com/donaldgifford/price-trigger-monitor/pkg/types"
)

// ErrInvalidTransition is returned when a job status change would move
// backwards or out of a terminal state.
var ErrInvalidTransition = errors.New("invalid job transition")

// Job lifecycle events.
const (
	EventDequeue = "dequeue"
	EventAck     = "ack"
	EventFail    = "fail"
)

func newJobMachine(from domain.JobStatus) *stateless.StateMachine {
	m := stateless.NewStateMachine(from)

	m.Configure(domain.JobPending).
		Permit(EventDequeue, domain.JobProcessing)

	m.Configure(domain.JobProcessing).
		Permit(EventAck, domain.JobDone).
		Permit(EventFail, domain.JobFailed)

	m.Configure(domain.JobDone)
	m.Configure(domain.JobFailed)

	return m
}

// Transition returns the status reached by applying event to a job in
// status from.
func Transition(from domain.JobStatus, event string) (domain.JobStatus, error) {
	m := newJobMachine(from)
	if err := m.Fire(event); err != nil {
		return from, fmt.Errorf("%w: %s from %s", ErrInvalidTransition, event, from)
	}
	return m.MustState().(domain.JobStatus), nil
}
