// pkg/session/shell.go
package session

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// Enter spawns the interactive shell with the session environment and
// blocks until the user exits it. The shell's exit status is propagated
// as the returned error.
func (ev *Evaluator) Enter(ctx context.Context, s *Session) error {
	shell := ev.platform.Shell

	cmd := exec.CommandContext(ctx, shell)
	cmd.Env = s.Environ()
	cmd.Dir = ev.config.Dir

	// The interactive shell talks to the real terminal regardless of
	// where init output was directed
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	ev.logger.Printf("entering %s for %q", shell, s.Name)

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("shell exited: %w", err)
	}

	return nil
}
