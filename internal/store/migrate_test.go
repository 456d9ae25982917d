package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingCandidates_Ordered(t *testing.T) {
	t.Parallel()

	versions, err := pendingCandidates()
	require.NoError(t, err)
	require.NotEmpty(t, versions)

	assert.Equal(t, "001_triggers_notifications.sql", versions[0])
	assert.IsNonDecreasing(t, versions)
	for _, v := range versions {
		assert.Contains(t, v, ".sql")
	}
}
