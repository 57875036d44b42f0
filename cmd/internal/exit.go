package internal

import (
	"fmt"
	"os"
	"strings"
)

// Fatal emits the message to stderr and exits with code 1.
func Fatal(msg string, args ...any) {
	Echo(msg, args...)
	os.Exit(1)
}

// Echo emits the given message to stderr without any logging formatting,
// appending a newline if the message doesn't end with one.
func Echo(msg string, args ...any) {
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	_, _ = fmt.Fprintf(os.Stderr, msg, args...)
}
