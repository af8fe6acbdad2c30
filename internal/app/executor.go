package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen/gateway-client/internal/platform/logging"
)

// Workflows that change gateway state run as Validate -> Perform -> Verify ->
// Respond. Verify reads the state back from the gateway instead of trusting
// the mutation's response, so a caller only sees success once the change is
// observable.

// ExecutionStep names a step of a workflow.
type ExecutionStep string

const (
	StepValidate ExecutionStep = "validate"
	StepPerform  ExecutionStep = "perform"
	StepVerify   ExecutionStep = "verify"
	StepRespond  ExecutionStep = "respond"
)

// ExecutionError wraps errors with the step where they occurred.
// Gateway and validation errors stay reachable through errors.Is/As.
type ExecutionError struct {
	Step    ExecutionStep
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ExecutionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s failed: %s: %v", e.Step, e.Message, e.Cause)
	}

	return fmt.Sprintf("%s failed: %s", e.Step, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *ExecutionError) Unwrap() error {
	return e.Cause
}

// Executor runs workflows step by step, logging each one.
type Executor struct {
	logger *slog.Logger
}

// NewExecutor creates a new executor with the given logger.
func NewExecutor(logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}

	return &Executor{logger: logger}
}

// Workflow holds the step functions. Only Perform is required.
type Workflow[I, P, V, O any] struct {
	// Name identifies the workflow in logs.
	Name string

	Validate func(ctx context.Context, input I) error
	Perform  func(ctx context.Context, input I) (P, error)

	// Verify re-reads what Perform changed.
	Verify func(ctx context.Context, input I, performed P) (V, error)

	Respond func(ctx context.Context, input I, verified V) (O, error)
}

// Execute runs wf for input. The first failing step ends the run; its error
// is returned as an *ExecutionError.
func Execute[I, P, V, O any](ctx context.Context, exec *Executor, wf Workflow[I, P, V, O], input I) (O, error) {
	var zero O

	if wf.Perform == nil {
		return zero, &ExecutionError{Step: StepPerform, Message: "workflow " + wf.Name + " has no perform step"}
	}

	logger := logging.FromContextOr(ctx, exec.logger).With(slog.String("workflow", wf.Name))
	start := time.Now()

	if wf.Validate != nil {
		if err := wf.Validate(ctx, input); err != nil {
			logger.WarnContext(ctx, "validation failed", slog.Any("error", err))

			return zero, &ExecutionError{Step: StepValidate, Message: "input validation failed", Cause: err}
		}
	}

	logger.DebugContext(ctx, "performing")

	performed, err := wf.Perform(ctx, input)
	if err != nil {
		logger.ErrorContext(ctx, "perform failed", slog.Any("error", err))

		return zero, &ExecutionError{Step: StepPerform, Message: "operation failed", Cause: err}
	}

	var verified V

	if wf.Verify != nil {
		verified, err = wf.Verify(ctx, input, performed)
		if err != nil {
			logger.ErrorContext(ctx, "verification failed", slog.Any("error", err))

			return zero, &ExecutionError{Step: StepVerify, Message: "verification failed", Cause: err}
		}
	}

	if wf.Respond == nil {
		logger.InfoContext(ctx, "workflow completed", slog.Duration("duration", time.Since(start)))

		return zero, nil
	}

	result, err := wf.Respond(ctx, input, verified)
	if err != nil {
		logger.WarnContext(ctx, "respond failed", slog.Any("error", err))

		return zero, &ExecutionError{Step: StepRespond, Message: "building response", Cause: err}
	}

	logger.InfoContext(ctx, "workflow completed", slog.Duration("duration", time.Since(start)))

	return result, nil
}

// ExecutionStepOf reports the step an execution error came from.
func ExecutionStepOf(err error) (ExecutionStep, bool) {
	var execErr *ExecutionError
	if errors.As(err, &execErr) {
		return execErr.Step, true
	}

	return "", false
}
