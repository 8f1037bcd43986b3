package main

import (
	"os"

	"safeget/cmd/safeget/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
