// pkg/session/script.go
package session

import (
	"context"
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// RunInit executes the session's init script, one line at a time, strictly
// in order. Each line blocks until the previous one has finished. The first
// line that exits non-zero aborts the run with ErrDiagnosticCommand; later
// lines are not executed and nothing is retried.
func (ev *Evaluator) RunInit(ctx context.Context, s *Session) error {
	if len(s.Init) == 0 {
		return nil
	}

	runner, err := interp.New(
		interp.Dir(ev.config.Dir),
		interp.Env(expand.ListEnviron(s.Environ()...)),
		interp.StdIO(ev.config.Stdin, ev.config.Stdout, ev.config.Stderr),
		interp.Params("-e"),
	)
	if err != nil {
		return &Error{Op: "init", Err: err}
	}

	parser := syntax.NewParser()

	for i, line := range s.Init {
		ev.logger.Printf("init %d/%d: %s", i+1, len(s.Init), line)

		file, err := parser.Parse(strings.NewReader(line), fmt.Sprintf("init:%d", i+1))
		if err != nil {
			return &Error{Op: "parse init line", Name: line, Err: err}
		}

		runCtx := ctx
		if ev.config.Timeout > 0 {
			var cancel context.CancelFunc
			runCtx, cancel = context.WithTimeout(ctx, ev.config.Timeout)
			err = runner.Run(runCtx, file)
			cancel()
		} else {
			err = runner.Run(runCtx, file)
		}

		if err != nil {
			if status, ok := interp.IsExitStatus(err); ok {
				return &Error{
					Op:   "init",
					Name: line,
					Err:  fmt.Errorf("%w: exit status %d", ErrDiagnosticCommand, status),
				}
			}
			return &Error{Op: "init", Name: line, Err: err}
		}
	}

	return nil
}
