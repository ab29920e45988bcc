package operations

import "fmt"

// ErrorType classifies a step error.
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeExecution  ErrorType = "execution"
	ErrorTypeNotFound   ErrorType = "not_found"
)

// StepError is an error raised by a pipeline step.
type StepError struct {
	Type    ErrorType
	Step    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *StepError) Error() string {
	if e == nil {
		return "unknown step error"
	}
	if e.Step != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Type, e.Step, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error.
func (e *StepError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// NewValidationError creates a validation error for a step.
func NewValidationError(step, message string) *StepError {
	return &StepError{Type: ErrorTypeValidation, Step: step, Message: message}
}

// NewExecutionError wraps a step execution failure.
func NewExecutionError(step string, cause error) *StepError {
	return &StepError{
		Type:    ErrorTypeExecution,
		Step:    step,
		Message: "step execution failed",
		Cause:   cause,
	}
}

// NewNotFoundError reports a missing step id.
func NewNotFoundError(step string) *StepError {
	return &StepError{Type: ErrorTypeNotFound, Step: step, Message: "step not registered"}
}
