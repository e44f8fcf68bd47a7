package ui

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

var (
	noColorGlobal bool
	debugGlobal   bool

	output io.Writer = os.Stderr
	exit             = os.Exit
)

// InitLogger sets the colour and verbosity of every message written by this
// package. Messages always go to stderr; stdout belongs to the child.
func InitLogger(disableColor, debug bool) {
	noColorGlobal = disableColor
	debugGlobal = debug
}

func NoColor() bool {
	return noColorGlobal
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func Debug(v ...any) {
	if !debugGlobal {
		return
	}
	prefix := "DEBUG: "
	if NoColor() {
		print(prefix, v...)
	} else {
		print(Blue+prefix+Reset, v...)
	}
}

func Warn(v ...any) {
	prefix := "WARN: "
	if NoColor() {
		print(prefix, v...)
	} else {
		print(Yellow+prefix+Reset, v...)
	}
}

func Fatal(v ...any) {
	prefix := "ERROR: "
	if NoColor() {
		print(prefix, v...)
	} else {
		print(Red+prefix+Reset, v...)
	}
	exit(1)
}

func print(prefix string, v ...any) {
	fmt.Fprintln(output, prefix+fmt.Sprint(v...))
}
