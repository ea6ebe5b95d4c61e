package observability

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRecorder_IncrementAndCount(t *testing.T) {
	recorder := NewRecorder(zap.NewNop())

	recorder.Increment("query_count", "GetStatsQuery")
	recorder.Increment("query_count", "GetStatsQuery")
	recorder.Increment("query_count", "GetLayoutQuery")

	assert.Equal(t, int64(2), recorder.Count("query_count", "GetStatsQuery"))
	assert.Equal(t, int64(1), recorder.Count("query_count", "GetLayoutQuery"))
	assert.Zero(t, recorder.Count("query_count", "unknown"))
}

func TestRecorder_Counters_ReturnsCopy(t *testing.T) {
	recorder := NewRecorder(zap.NewNop())
	recorder.Increment("query_count", "GetStatsQuery")

	counters := recorder.Counters()
	counters["query_count:GetStatsQuery"] = 100

	assert.Equal(t, int64(1), recorder.Count("query_count", "GetStatsQuery"))
}

func TestRecorder_ConcurrentIncrements(t *testing.T) {
	recorder := NewRecorder(zap.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			recorder.Increment("requests", "total")
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(50), recorder.Count("requests", "total"))
}

func TestTimer_StopIsSafe(t *testing.T) {
	recorder := NewRecorder(zap.NewNop())

	timer := recorder.StartTimer("analysis_duration", "full")
	timer.Stop()
}
