package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/price-trigger-monitor/pkg/types"
)

func TestTransition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		from    domain.JobStatus
		event   string
		want    domain.JobStatus
		wantErr bool
	}{
		{name: "pending dequeued", from: domain.JobPending, event: EventDequeue, want: domain.JobProcessing},
		{name: "processing acked", from: domain.JobProcessing, event: EventAck, want: domain.JobDone},
		{name: "processing failed", from: domain.JobProcessing, event: EventFail, want: domain.JobFailed},
		{name: "pending cannot be acked", from: domain.JobPending, event: EventAck, wantErr: true},
		{name: "processing cannot be dequeued again", from: domain.JobProcessing, event: EventDequeue, wantErr: true},
		{name: "done is terminal", from: domain.JobDone, event: EventFail, wantErr: true},
		{name: "failed is terminal", from: domain.JobFailed, event: EventDequeue, wantErr: true},
		{name: "done cannot be acked twice", from: domain.JobDone, event: EventAck, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Transition(tt.from, tt.event)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTransition)
				assert.Equal(t, tt.from, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMessage_Validate(t *testing.T) {
	t.Parallel()

	require.Error(t, Message{}.Validate())
	require.NoError(t, Message{TriggerID: "t-1"}.Validate())
}

func TestNewOptions_Defaults(t *testing.T) {
	t.Parallel()

	o := newOptions([]Option{WithLeaseTTL(0), WithMaxAttempts(-1)})
	assert.Equal(t, defaultLeaseTTL, o.LeaseTTL)
	assert.Equal(t, defaultMaxAttempts, o.MaxAttempts)
	assert.Equal(t, defaultPollInterval, o.PollInterval)
	assert.NotNil(t, o.Logger)
}

func TestValidStatusFilter(t *testing.T) {
	t.Parallel()

	require.NoError(t, validStatusFilter(""))
	require.NoError(t, validStatusFilter(domain.JobFailed))
	require.Error(t, validStatusFilter("unresolved"))
}
