// File: executor.go
// Title: Command Executor
// Description: Invokes the handler of a resolved command with a deadline,
//              recovers panics and audits every execution.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial executor implementation
// - 2026-10-19 v0.2.0: Executes resolver matches, uuid request ids, panic recovery

package executor

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"time"

	"github.com/google/uuid"

	"github.com/msto63/cmdsys/foundation/cmdsys/resolver"
	mdwerror "github.com/msto63/cmdsys/foundation/core/error"
	"github.com/msto63/cmdsys/foundation/core/log"
)

// DefaultTimeout bounds a handler when Options.Timeout is not set
const DefaultTimeout = 30 * time.Second

// Audit statuses
const (
	StatusStarted   = "STARTED"
	StatusCompleted = "COMPLETED"
	StatusFailed    = "FAILED"
)

// Engine executes resolved commands
type Engine struct {
	logger  *log.Logger
	options Options
}

// Options configures executor behavior
type Options struct {
	Logger  *log.Logger
	Timeout time.Duration
}

// ExecutionContext describes one execution for logging and auditing
type ExecutionContext struct {
	RequestID     string
	SessionID     string
	CorrelationID string
	Timestamp     time.Time
	Metadata      map[string]interface{}
}

// ExecutionResult represents the result of command execution
type ExecutionResult struct {
	Success       bool                   `json:"success"`
	Data          interface{}            `json:"data,omitempty"`
	Error         error                  `json:"-"`
	ExecutionTime time.Duration          `json:"execution_time"`
	Command       string                 `json:"command"`
	RequestID     string                 `json:"request_id"`
	Metadata      map[string]interface{} `json:"metadata,omitempty"`
}

type outcome struct {
	value interface{}
	err   error
}

// New creates a new executor
func New(opts Options) *Engine {
	if opts.Logger == nil {
		opts.Logger = log.GetDefault()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	engine := &Engine{
		logger:  opts.Logger.WithField("component", "cmdsys-executor"),
		options: opts,
	}

	engine.logger.Debug("Command executor initialized", log.Fields{
		"timeout": opts.Timeout,
	})

	return engine
}

// Timeout returns the deadline applied to each handler
func (e *Engine) Timeout() time.Duration {
	return e.options.Timeout
}

// Execute runs the handler of match. A failed handler still yields a result
// with Success false; the returned error is always a *mdwerror.Error.
func (e *Engine) Execute(ctx context.Context, match *resolver.Match, execCtx *ExecutionContext) (*ExecutionResult, error) {
	if match == nil || match.Command == nil {
		return nil, mdwerror.New("match cannot be nil").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("executor.Execute")
	}
	if match.Command.Handler == nil {
		return nil, mdwerror.New(fmt.Sprintf("command %s has no handler", match.Command.Signature.Raw)).
			WithCode(mdwerror.CodeExecution).
			WithOperation("executor.Execute")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	execCtx = prepare(execCtx)
	startTime := time.Now()

	if e.logger.IsLevelEnabled(log.LevelDebug) {
		e.logger.Debug("Executing command", log.Fields{
			"requestID": execCtx.RequestID,
			"command":   match.Command.Signature.Raw,
			"args":      len(match.Args),
		})
	}
	e.audit(match, execCtx, StatusStarted, nil)

	value, err := e.invoke(ctx, match)

	result := &ExecutionResult{
		Success:       err == nil,
		Data:          value,
		ExecutionTime: time.Since(startTime),
		Command:       match.Command.Signature.Raw,
		RequestID:     execCtx.RequestID,
		Metadata:      execCtx.Metadata,
	}

	if err != nil {
		wrapped := e.wrapError(err, match, execCtx)
		result.Data = nil
		result.Error = wrapped
		e.audit(match, execCtx, StatusFailed, wrapped)
		return result, wrapped
	}

	e.audit(match, execCtx, StatusCompleted, nil)
	if e.logger.IsLevelEnabled(log.LevelDebug) {
		e.logger.Debug("Command execution completed", log.Fields{
			"requestID":     execCtx.RequestID,
			"executionTime": result.ExecutionTime,
		})
	}

	return result, nil
}

// ExecuteBatch executes matches in sequence and stops at the first failure.
// Every match gets its own request id derived from execCtx.
func (e *Engine) ExecuteBatch(ctx context.Context, matches []*resolver.Match, execCtx *ExecutionContext) ([]*ExecutionResult, error) {
	if len(matches) == 0 {
		return []*ExecutionResult{}, nil
	}

	execCtx = prepare(execCtx)
	results := make([]*ExecutionResult, 0, len(matches))

	for i, match := range matches {
		cmdCtx := *execCtx
		cmdCtx.RequestID = fmt.Sprintf("%s-%d", execCtx.RequestID, i)

		result, err := e.Execute(ctx, match, &cmdCtx)
		if result != nil {
			results = append(results, result)
		}
		if err != nil {
			return results, err
		}
	}

	return results, nil
}

// prepare returns a copy of execCtx with defaults filled in. The caller's
// context and its metadata map are left untouched.
func prepare(execCtx *ExecutionContext) *ExecutionContext {
	var prepared ExecutionContext
	if execCtx != nil {
		prepared = *execCtx
	}
	if prepared.RequestID == "" {
		prepared.RequestID = uuid.NewString()
	}
	if prepared.Timestamp.IsZero() {
		prepared.Timestamp = time.Now()
	}
	prepared.Metadata = maps.Clone(prepared.Metadata)
	if prepared.Metadata == nil {
		prepared.Metadata = make(map[string]interface{})
	}
	return &prepared
}

// invoke runs the handler on its own goroutine so that the deadline holds
// even for handlers that never look at ctx.
func (e *Engine) invoke(ctx context.Context, match *resolver.Match) (interface{}, error) {
	ctx, cancel := context.WithTimeout(ctx, e.options.Timeout)
	defer cancel()

	done := make(chan outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome{err: mdwerror.New(fmt.Sprintf("handler panicked: %v", r)).
					WithCode(mdwerror.CodeExecution).
					WithDetail("panic", fmt.Sprint(r))}
			}
		}()
		value, err := match.Command.Handler(ctx, match.Args)
		done <- outcome{value: value, err: err}
	}()

	select {
	case out := <-done:
		return out.value, out.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (e *Engine) wrapError(err error, match *resolver.Match, execCtx *ExecutionContext) *mdwerror.Error {
	var wrapped *mdwerror.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		wrapped = mdwerror.Wrap(err, fmt.Sprintf("command %s timed out", match.Command.Signature.Raw)).
			WithCode(mdwerror.CodeTimeout).
			WithDetail("timeout", e.options.Timeout.String())
	case errors.Is(err, context.Canceled):
		wrapped = mdwerror.Wrap(err, fmt.Sprintf("command %s was canceled", match.Command.Signature.Raw)).
			WithCode(mdwerror.CodeExecution)
	case mdwerror.GetCode(err) != mdwerror.CodeUnknown:
		wrapped = mdwerror.Wrap(err, fmt.Sprintf("command %s failed", match.Command.Signature.Raw))
	default:
		wrapped = mdwerror.Wrap(err, fmt.Sprintf("command %s failed", match.Command.Signature.Raw)).
			WithCode(mdwerror.CodeExecution)
	}

	return wrapped.
		WithOperation("executor.Execute").
		WithDetail("requestID", execCtx.RequestID)
}

func (e *Engine) audit(match *resolver.Match, execCtx *ExecutionContext, status string, err error) {
	fields := log.Fields{
		"requestID": execCtx.RequestID,
		"sessionID": execCtx.SessionID,
		"command":   match.Command.Signature.Raw,
		"input":     match.Parsed.String(),
		"status":    status,
		"timestamp": execCtx.Timestamp,
	}
	if execCtx.CorrelationID != "" {
		fields["correlationID"] = execCtx.CorrelationID
	}
	if err != nil {
		fields["error"] = err.Error()
	}
	e.logger.Audit("Command execution", fields)
}
