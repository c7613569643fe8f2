package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/a2aproject/a2a-go/a2a"
	"github.com/a2aproject/a2a-go/a2asrv"
	"github.com/a2aproject/a2a-go/a2asrv/eventqueue"

	"github.com/laxmi-genai/adk-a2ui-samples/a2ui"
	"github.com/laxmi-genai/adk-a2ui-samples/core"
	"github.com/laxmi-genai/adk-a2ui-samples/logging"
)

// ExecutorOptions holds overrides passed to NewExecutor.
type ExecutorOptions struct {
	Logger logging.Logger
}

// Executor bridges the agent runtime to the A2A protocol. One executor
// serves all tasks; per-request state lives on the RequestContext.
//
// Event translation:
//   - new task: TaskStatusUpdateEvent submitted
//   - before the run: TaskStatusUpdateEvent working
//   - run error: TaskStatusUpdateEvent failed (final) carrying the error text
//   - success: TaskStatusUpdateEvent completed (final) carrying the A2UI parts
type Executor struct {
	runner core.Runner
	logger logging.Logger
}

// NewExecutor creates an executor driving the given runner.
func NewExecutor(r core.Runner, optFns ...func(o *ExecutorOptions)) *Executor {
	opts := ExecutorOptions{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Executor{runner: r, logger: opts.Logger}
}

// Execute implements a2asrv.AgentExecutor.
//
// An interaction with neither free text nor a userAction payload is a
// silent no-op: nothing is written to the queue and no task state changes.
func (e *Executor) Execute(ctx context.Context, reqCtx *a2asrv.RequestContext, queue eventqueue.Queue) error {
	msg := reqCtx.Message
	if msg == nil {
		return fmt.Errorf("message not provided")
	}

	userText := textFromParts(msg.Parts)
	action, hasAction := a2ui.ExtractUserAction(msg.Parts)

	if userText == "" && !hasAction {
		e.logger.Debug("server.execute.empty_interaction", "task_id", string(reqCtx.TaskID))
		return nil
	}

	if ActivateExtension(ctx, a2ui.ExtensionURI) {
		e.logger.Debug("server.execute.extension_activated", "uri", a2ui.ExtensionURI)
	}

	if reqCtx.StoredTask == nil {
		if err := queue.Write(ctx, a2a.NewStatusUpdateEvent(reqCtx, a2a.TaskStateSubmitted, nil)); err != nil {
			return fmt.Errorf("failed to write submitted event: %w", err)
		}
	}

	if err := queue.Write(ctx, a2a.NewStatusUpdateEvent(reqCtx, a2a.TaskStateWorking, nil)); err != nil {
		return fmt.Errorf("failed to write working event: %w", err)
	}

	prompt := userText
	if hasAction {
		e.logger.Info("server.execute.user_action", "action", action.Name)
		prompt = strings.TrimSpace(prompt + "\n" + action.Directive())
	}

	raw, err := e.collectResponse(ctx, reqCtx.ContextID, prompt)
	if err != nil {
		e.logger.Error("server.execute.run_failed", "error", err.Error())
		failed := a2a.NewStatusUpdateEvent(reqCtx, a2a.TaskStateFailed,
			a2a.NewMessageForTask(a2a.MessageRoleAgent, reqCtx, a2a.TextPart{Text: "Error: " + err.Error()}))
		failed.Final = true
		if writeErr := queue.Write(ctx, failed); writeErr != nil {
			return fmt.Errorf("failed to write failed event: %w (run error: %w)", writeErr, err)
		}
		return nil
	}

	parts := a2ui.PartsForOutput(raw)
	if len(parts) == 0 {
		e.logger.Warn("server.execute.no_parts", "task_id", string(reqCtx.TaskID))
	}

	completed := a2a.NewStatusUpdateEvent(reqCtx, a2a.TaskStateCompleted,
		a2a.NewMessageForTask(a2a.MessageRoleAgent, reqCtx, parts...))
	completed.Final = true
	if err := queue.Write(ctx, completed); err != nil {
		return fmt.Errorf("failed to write completed event: %w", err)
	}
	return nil
}

// Cancel implements a2asrv.AgentExecutor. Tasks complete within a single
// interaction, so cancellation is never supported and no state changes.
func (e *Executor) Cancel(ctx context.Context, reqCtx *a2asrv.RequestContext, queue eventqueue.Queue) error {
	return a2a.ErrTaskNotCancelable
}

// collectResponse runs the agent for one interaction and accumulates the
// assistant's text output in delivery order. Streamed partial fragments are
// preferred; final events are only used when no fragments preceded them, so
// text is never counted twice.
func (e *Executor) collectResponse(ctx context.Context, contextID, prompt string) (string, error) {
	runID, events, errs, err := e.runner.Run(ctx, contextID, core.NewUserText(prompt))
	if err != nil {
		return "", err
	}
	e.logger.Debug("server.execute.run_started", "run_id", runID, "session_id", contextID)

	var out strings.Builder
	var runErr error
	sawPartial := false

	for events != nil || errs != nil {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if ev.Content == nil {
				continue
			}
			if ev.IsPartial() {
				sawPartial = true
				out.WriteString(ev.Content.Text())
				continue
			}
			if !sawPartial {
				out.WriteString(ev.Content.Text())
			}
		case runErrCandidate, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			if runErrCandidate != nil {
				runErr = runErrCandidate
			}
		}
	}

	if runErr != nil {
		return "", runErr
	}
	return out.String(), nil
}

func textFromParts(parts []a2a.Part) string {
	var texts []string
	for _, part := range parts {
		if tp, ok := part.(a2a.TextPart); ok && tp.Text != "" {
			texts = append(texts, tp.Text)
		}
	}
	return strings.Join(texts, "\n")
}

var _ a2asrv.AgentExecutor = (*Executor)(nil)
