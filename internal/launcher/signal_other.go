//go:build !unix

package launcher

import "os"

var relayedSignals []os.Signal
