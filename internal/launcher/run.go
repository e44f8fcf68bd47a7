package launcher

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"micromachine.dev/launcher/internal/ui"
)

// ExitError carries a non-zero exit status of the child.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command exited with code %d", e.Code)
}

func (e *ExitError) ExitCode() int { return e.Code }

// Streams are handed to the child as-is. *os.File values are inherited
// directly by the child, anything else is copied through a pipe.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func StdStreams() Streams {
	return Streams{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run executes path with args and waits for it. A non-zero exit is reported
// as *ExitError; any failure to start or wait is returned wrapped.
func Run(path string, args []string, streams Streams) error {
	cmd := exec.Command(path, args...)
	cmd.Stdin = streams.Stdin
	cmd.Stdout = streams.Stdout
	cmd.Stderr = streams.Stderr

	// Interrupts reach the whole foreground process group; the launcher
	// only has to survive them long enough to collect the child's status.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, append([]os.Signal{os.Interrupt}, relayedSignals...)...)
	defer signal.Stop(sigs)

	ui.Debug("exec ", path, " ", args)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf(ui.MsgStartFailed+": %w", path, err)
	}

	done := make(chan struct{})
	defer close(done)
	go relay(cmd.Process, sigs, done)

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{Code: exitCode(exitErr)}
		}
		return fmt.Errorf("wait for %s: %w", path, err)
	}
	return nil
}

func relay(p *os.Process, sigs <-chan os.Signal, done <-chan struct{}) {
	for {
		select {
		case sig := <-sigs:
			if sig == os.Interrupt {
				continue
			}
			ui.Debug("forwarding ", sig)
			if err := p.Signal(sig); err != nil {
				ui.Debug("forward ", sig, ": ", err)
			}
		case <-done:
			return
		}
	}
}

func exitCode(err *exec.ExitError) int {
	if ws, ok := err.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return err.ExitCode()
}
