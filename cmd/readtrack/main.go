// Command readtrack runs the reading tracker backend and its maintenance tasks.
//
// Usage:
//
//	readtrack serve --config=./config.yaml
//	readtrack migrate up
//	readtrack promote --email=user@example.com
//	readtrack token --user-id=<uuid>
package main

import (
	"os"
)

func main() {
	if err := rootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
