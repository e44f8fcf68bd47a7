// micromachine is the launcher installed by the micromachine npm package. It
// locates the platform package for the host (@micromachine.dev/cli-<os>-<arch>)
// and runs the native binary inside it, forwarding every argument, the standard
// streams and the exit code.
package main

import (
	"errors"
	"os"

	"micromachine.dev/launcher/internal/arch"
	"micromachine.dev/launcher/internal/config"
	"micromachine.dev/launcher/internal/launcher"
	"micromachine.dev/launcher/internal/resolve"
	"micromachine.dev/launcher/internal/ui"
)

var (
	detectPlatform   = arch.Detect
	locateExecutable = resolve.ExecutableDir
)

func main() {
	err := run(os.Args[1:])
	var exitErr *launcher.ExitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.ExitCode())
	}
	if err != nil {
		ui.Fatal(err)
	}
}

func run(args []string) error {
	cfg := config.Load()
	ui.InitLogger(cfg.NoColor || !ui.IsTerminal(os.Stderr), cfg.Debug)

	target, err := launcher.Resolve(detectPlatform(), resolve.FromConfig(cfg, locateExecutable))
	if err != nil {
		return err
	}
	return launcher.Run(target.Path, args, launcher.StdStreams())
}
