package k2

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"k2demo/models"
)

func TestDebugStorePutGet(t *testing.T) {
	s := NewDebugStore(3)
	s.Put(&models.DebugLog{CorrelationID: "corr-1", DetectedScenario: "a"})

	log, ok := s.Get("corr-1")
	require.True(t, ok)
	assert.Equal(t, "a", log.DetectedScenario)

	_, ok = s.Get("corr-unknown")
	assert.False(t, ok)
}

func TestDebugStoreFIFOEviction(t *testing.T) {
	s := NewDebugStore(3)
	for i := 1; i <= 4; i++ {
		s.Put(&models.DebugLog{CorrelationID: fmt.Sprintf("corr-%d", i)})
	}

	assert.Equal(t, 3, s.Len())
	_, ok := s.Get("corr-1")
	assert.False(t, ok, "oldest entry must be evicted")
	for i := 2; i <= 4; i++ {
		_, ok := s.Get(fmt.Sprintf("corr-%d", i))
		assert.True(t, ok)
	}
}

func TestDebugStoreReplaceKeepsOrder(t *testing.T) {
	s := NewDebugStore(2)
	s.Put(&models.DebugLog{CorrelationID: "corr-a", DetectedScenario: "old"})
	s.Put(&models.DebugLog{CorrelationID: "corr-b"})

	// Replacing corr-a does not evict anything or move it to the back.
	s.Put(&models.DebugLog{CorrelationID: "corr-a", DetectedScenario: "new"})
	assert.Equal(t, 2, s.Len())
	log, ok := s.Get("corr-a")
	require.True(t, ok)
	assert.Equal(t, "new", log.DetectedScenario)

	// The next fresh key evicts corr-a, the oldest insertion.
	s.Put(&models.DebugLog{CorrelationID: "corr-c"})
	_, ok = s.Get("corr-a")
	assert.False(t, ok)
	_, ok = s.Get("corr-b")
	assert.True(t, ok)
}
