package operations

import (
	"sync"
	"time"
)

// RunStatus represents the overall status of a pipeline run.
type RunStatus string

const (
	RunStatusPending   RunStatus = "pending"
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusFailed    RunStatus = "failed"
)

// Context keys for the datasets steps pass to each other.
const (
	KeyRawTables        = "raw_tables"
	KeyStoreTables      = "store_tables"
	KeyPublishProduct   = "publish_product"
	KeyPublishOrders    = "publish_orders"
	KeyColorRevenue     = "color_revenue"
	KeyAverageLeadTimes = "average_lead_times"
)

// RunState is the complete state of one pipeline run: overall status and
// timing, per-step states, and the context carrying each stage's output to
// the next.
type RunState struct {
	mu sync.RWMutex

	ID        string
	Status    RunStatus
	StartTime time.Time
	EndTime   *time.Time

	Steps map[string]*StepState

	// context carries datasets between steps.
	context map[string]any

	// Err is set when the run failed.
	Err error
}

// NewRunState creates a pending run state.
func NewRunState(id string) *RunState {
	return &RunState{
		ID:        id,
		Status:    RunStatusPending,
		StartTime: time.Now(),
		Steps:     make(map[string]*StepState),
		context:   make(map[string]any),
	}
}

// Start marks the run as running.
func (r *RunState) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Status = RunStatusRunning
	r.StartTime = time.Now()
}

// Complete marks the run as completed.
func (r *RunState) Complete() {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	r.EndTime = &now
	r.Status = RunStatusCompleted
}

// Fail marks the run as failed.
func (r *RunState) Fail(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	r.EndTime = &now
	r.Status = RunStatusFailed
	r.Err = err
}

// CurrentStatus returns the run status.
func (r *RunState) CurrentStatus() RunStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.Status
}

// Set stores a dataset under the given key.
func (r *RunState) Set(key string, value any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.context[key] = value
}

// Get returns the dataset stored under the given key.
func (r *RunState) Get(key string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	value, ok := r.context[key]
	return value, ok
}

// AddStep registers a step state on the run.
func (r *RunState) AddStep(s *StepState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Steps[s.ID] = s
}

// StepState returns the state for the given step id.
func (r *RunState) StepState(id string) (*StepState, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.Steps[id]
	return s, ok
}

// Duration returns how long the run has run, or ran.
func (r *RunState) Duration() time.Duration {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.EndTime != nil {
		return r.EndTime.Sub(r.StartTime)
	}
	return time.Since(r.StartTime)
}
