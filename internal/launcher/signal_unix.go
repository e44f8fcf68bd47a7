//go:build unix

package launcher

import (
	"os"

	"golang.org/x/sys/unix"
)

// Signals sent to the launcher alone, typically by a supervisor.
var relayedSignals = []os.Signal{unix.SIGTERM, unix.SIGHUP, unix.SIGQUIT}
