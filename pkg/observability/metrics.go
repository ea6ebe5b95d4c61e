package observability

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Recorder collects lightweight in-process metrics and reports them
// through the structured log stream. Counters are also kept in memory
// so health endpoints and tests can read them back.
type Recorder struct {
	logger *zap.Logger

	mu       sync.Mutex
	counters map[string]int64
}

// NewRecorder creates a new metrics recorder
func NewRecorder(logger *zap.Logger) *Recorder {
	return &Recorder{
		logger:   logger,
		counters: make(map[string]int64),
	}
}

// Increment bumps a named counter
func (r *Recorder) Increment(metric, label string) {
	r.mu.Lock()
	r.counters[metric+":"+label]++
	r.mu.Unlock()
}

// Count returns the current value of a counter
func (r *Recorder) Count(metric, label string) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counters[metric+":"+label]
}

// Counters returns a copy of all counter values
func (r *Recorder) Counters() map[string]int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[string]int64, len(r.counters))
	for k, v := range r.counters {
		out[k] = v
	}
	return out
}

// StartTimer starts a duration measurement that logs on Stop
func (r *Recorder) StartTimer(metric, label string) *Timer {
	return &Timer{
		recorder: r,
		metric:   metric,
		label:    label,
		start:    time.Now(),
	}
}

// Timer measures the duration of a single operation
type Timer struct {
	recorder *Recorder
	metric   string
	label    string
	start    time.Time
}

// Stop ends the measurement and logs the duration
func (t *Timer) Stop() {
	elapsed := time.Since(t.start)
	t.recorder.logger.Debug("Operation timed",
		zap.String("metric", t.metric),
		zap.String("label", t.label),
		zap.Duration("duration", elapsed),
	)
}
