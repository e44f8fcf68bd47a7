package ui

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T) (*bytes.Buffer, *int) {
	t.Helper()
	buf := &bytes.Buffer{}
	code := -1
	prevOut, prevExit := output, exit
	prevColor, prevDebug := noColorGlobal, debugGlobal
	output = buf
	exit = func(c int) { code = c }
	t.Cleanup(func() {
		output, exit = prevOut, prevExit
		noColorGlobal, debugGlobal = prevColor, prevDebug
	})
	return buf, &code
}

func TestDebugHiddenByDefault(t *testing.T) {
	buf, _ := capture(t)
	InitLogger(true, false)
	Debug("probing", " /tmp")
	assert.Empty(t, buf.String())

	InitLogger(true, true)
	Debug("probing", " /tmp")
	assert.Equal(t, "DEBUG: probing /tmp\n", buf.String())
}

func TestFatalPlain(t *testing.T) {
	buf, code := capture(t)
	InitLogger(true, false)
	Fatal(errors.New("unsupported platform: freebsd-amd64"))
	assert.Equal(t, "ERROR: unsupported platform: freebsd-amd64\n", buf.String())
	assert.Equal(t, 1, *code)
}

func TestWarnColoured(t *testing.T) {
	buf, _ := capture(t)
	InitLogger(false, false)
	Warn("skipping")
	assert.Equal(t, Yellow+"WARN: "+Reset+"skipping\n", buf.String())
}
