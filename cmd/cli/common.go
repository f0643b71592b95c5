package main

import (
	"fmt"
	"io"
	"os"

	"deqr/pkg/logging"
)

// readInput returns the text to scan: the named file, or stdin when no
// argument (or "-") is given.
func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read %s: %w", args[0], err)
	}
	return string(data), nil
}

func writeInfo(format string, args ...any) {
	logging.Infof(format, args...)
	fmt.Printf(format+"\n", args...)
}
