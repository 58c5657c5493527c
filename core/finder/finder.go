package finder

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Finder presents display lines to the operator and returns the chosen one.
// An empty string with a nil error means "no selection".
type Finder interface {
	Pick(ctx context.Context, lines []string) (string, error)
}

// ExecFinder runs an external interactive matcher process (fzf by default).
// The lines are written newline-joined to its standard input and the selected
// line is read from its standard output.
type ExecFinder struct {
	// Command is the executable to invoke.
	Command string
	// Args are passed verbatim to the command.
	Args []string
}

// NewExecFinder creates a finder for the configured command.
func NewExecFinder(cfg Config) *ExecFinder {
	return &ExecFinder{Command: cfg.Command}
}

// Pick runs the matcher and returns the selected line.
func (f *ExecFinder) Pick(ctx context.Context, lines []string) (string, error) {
	cmd := exec.CommandContext(ctx, f.Command, f.Args...)
	cmd.Stdin = strings.NewReader(strings.Join(lines, "\n"))
	// The matcher draws its interface on stderr (fzf does), so it must stay
	// attached to the terminal.
	cmd.Stderr = os.Stderr

	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			switch exitErr.ExitCode() {
			case 1, 130:
				// fzf: 1 = no match, 130 = interrupted. Both mean no selection.
				return "", nil
			}
		}
		return "", fmt.Errorf("fuzzy finder %q failed: %w", f.Command, err)
	}

	return strings.TrimRight(out.String(), "\r\n"), nil
}
