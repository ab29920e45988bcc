package operations

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStep is a configurable step used by the framework tests.
type fakeStep struct {
	id          string
	validateErr error
	executeErr  error
	executed    *[]string
}

func (s *fakeStep) ID() string   { return s.id }
func (s *fakeStep) Name() string { return "fake " + s.id }

func (s *fakeStep) Validate(state *RunState) error { return s.validateErr }

func (s *fakeStep) Execute(ctx context.Context, state *RunState) error {
	if s.executed != nil {
		*s.executed = append(*s.executed, s.id)
	}
	return s.executeErr
}

func TestRegistryPreservesOrder(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&fakeStep{id: "c"}))
	require.NoError(t, r.Register(&fakeStep{id: "a"}))
	require.NoError(t, r.Register(&fakeStep{id: "b"}))

	ids := make([]string, 0, r.Len())
	for _, step := range r.List() {
		ids = append(ids, step.ID())
	}
	assert.Equal(t, []string{"c", "a", "b"}, ids)
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&fakeStep{id: "a"}))
	assert.Error(t, r.Register(&fakeStep{id: "a"}))
}

func TestRegistryRejectsNilAndEmptyID(t *testing.T) {
	r := NewRegistry()
	assert.Error(t, r.Register(nil))
	assert.Error(t, r.Register(&fakeStep{id: ""}))
}

func TestRegistryGet(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&fakeStep{id: "a"}))

	step, err := r.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "a", step.ID())

	_, err = r.Get("missing")
	require.Error(t, err)
	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, ErrorTypeNotFound, stepErr.Type)
}

func TestStepErrorFormatting(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := NewExecutionError("normalize", cause)
	assert.Contains(t, err.Error(), "normalize")
	assert.ErrorIs(t, err, cause)
}
