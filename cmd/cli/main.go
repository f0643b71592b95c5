package main

import "deqr/pkg/logging"

func main() {
	if err := logging.ConfigureDefault(); err != nil {
		logging.Warnf("logging setup failed: %v", err)
	}
	Execute()
}
