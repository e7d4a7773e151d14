// Package shell provides the build command executor adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"sync"

	"go.trai.ch/fileslist/internal/core/domain"
	"go.trai.ch/fileslist/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CommandExecutor = (*Executor)(nil)

// Executor implements ports.CommandExecutor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor streaming command output to logger.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Execute runs command in dir with the inherited environment.
// Stdout lines are logged as info, stderr lines as warnings.
func (e *Executor) Execute(ctx context.Context, command []string, dir string) error {
	if len(command) == 0 {
		return nil
	}

	cmd := exec.CommandContext(ctx, command[0], command[1:]...) //nolint:gosec // user provided command
	cmd.Dir = dir
	cmd.Env = os.Environ()

	stdout := &logWriter{emit: e.logger.Info}
	stderr := &logWriter{emit: e.logger.Warn}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	stdout.Flush()
	stderr.Flush()

	if err != nil {
		exitCode := -1 // Unknown or signal
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		wrapped := zerr.With(zerr.Wrap(err, domain.ErrCommandFailed.Error()), "command", command[0])
		return zerr.With(wrapped, "exit_code", exitCode)
	}

	return nil
}

// logWriter buffers partial writes and emits one log entry per complete line.
type logWriter struct {
	mu   sync.Mutex
	buf  bytes.Buffer
	emit func(string)
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf.Write(p)
	for {
		line, ok := w.nextLine()
		if !ok {
			break
		}
		w.emit(line)
	}
	return len(p), nil
}

// Flush emits any trailing output that did not end with a newline.
func (w *logWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.buf.Len() > 0 {
		w.emit(string(bytes.TrimSuffix(w.buf.Bytes(), []byte("\r"))))
		w.buf.Reset()
	}
}

func (w *logWriter) nextLine() (string, bool) {
	idx := bytes.IndexByte(w.buf.Bytes(), '\n')
	if idx < 0 {
		return "", false
	}
	line := w.buf.Next(idx + 1)
	line = bytes.TrimSuffix(line[:idx], []byte("\r"))
	return string(line), true
}
