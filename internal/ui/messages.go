package ui

const (
	Red    = "\033[31m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Reset  = "\033[0m"
)

const (
	MsgUnsupportedPlatform = "unsupported platform: %s"
	MsgBinaryNotFound      = "could not find binary for %s; please ensure %s is installed"
	MsgStartFailed         = "failed to start %s"
)
