package notify

import (
	"context"
	"errors"
)

// MultiNotifier fans an alert out to several notifiers. Every notifier is
// tried; the returned error joins all failures.
type MultiNotifier struct {
	notifiers []Notifier
}

// NewMultiNotifier returns a notifier that delegates to each of ns.
func NewMultiNotifier(ns ...Notifier) *MultiNotifier {
	return &MultiNotifier{notifiers: ns}
}

// Len returns the number of wrapped notifiers.
func (m *MultiNotifier) Len() int {
	return len(m.notifiers)
}

// SendAlert sends alert through every notifier.
func (m *MultiNotifier) SendAlert(ctx context.Context, alert *AlertPayload) error {
	var errs []error
	for _, n := range m.notifiers {
		if err := n.SendAlert(ctx, alert); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// SendBatchAlert sends alerts through every notifier.
func (m *MultiNotifier) SendBatchAlert(ctx context.Context, alerts []AlertPayload, label string) error {
	var errs []error
	for _, n := range m.notifiers {
		if err := n.SendBatchAlert(ctx, alerts, label); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
