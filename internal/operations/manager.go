package operations

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Manager executes the registered pipeline steps strictly in sequence,
// stopping at the first failure.
type Manager struct {
	registry *Registry
	logger   *slog.Logger
}

// NewManager creates a manager over the given registry.
func NewManager(registry *Registry, logger *slog.Logger) *Manager {
	if registry == nil {
		registry = NewRegistry()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{registry: registry, logger: logger}
}

// Registry returns the step registry.
func (m *Manager) Registry() *Registry {
	return m.registry
}

// Execute runs every registered step in registration order against a fresh
// run state. The returned state always reflects the run, also when the run
// failed.
func (m *Manager) Execute(ctx context.Context, runID string) (*RunState, error) {
	if runID == "" {
		runID = fmt.Sprintf("run-%d", time.Now().Unix())
	}

	state := NewRunState(runID)
	state.Start()
	m.logger.Info("pipeline run started",
		slog.String("run_id", runID),
		slog.Int("steps", m.registry.Len()))

	for _, step := range m.registry.List() {
		stepState := NewStepState(step.ID(), step.Name())
		state.AddStep(stepState)

		if err := ctx.Err(); err != nil {
			stepState.Fail(err)
			state.Fail(err)
			return state, fmt.Errorf("pipeline run cancelled before step %s: %w", step.ID(), err)
		}

		if err := step.Validate(state); err != nil {
			wrapped := NewValidationError(step.ID(), err.Error())
			stepState.Fail(wrapped)
			state.Fail(wrapped)
			m.logger.Error("step validation failed",
				slog.String("run_id", runID),
				slog.String("step", step.ID()),
				slog.String("error", err.Error()))
			return state, wrapped
		}

		stepState.Start()
		m.logger.Info("step started",
			slog.String("run_id", runID),
			slog.String("step", step.ID()),
			slog.String("name", step.Name()))

		if err := step.Execute(ctx, state); err != nil {
			wrapped := NewExecutionError(step.ID(), err)
			stepState.Fail(wrapped)
			state.Fail(wrapped)
			m.logger.Error("step failed",
				slog.String("run_id", runID),
				slog.String("step", step.ID()),
				slog.String("error", err.Error()),
				slog.Duration("duration", stepState.Duration()))
			return state, wrapped
		}

		stepState.Complete()
		m.logger.Info("step completed",
			slog.String("run_id", runID),
			slog.String("step", step.ID()),
			slog.Duration("duration", stepState.Duration()))
	}

	state.Complete()
	m.logger.Info("pipeline run completed",
		slog.String("run_id", runID),
		slog.Duration("duration", state.Duration()))
	return state, nil
}
