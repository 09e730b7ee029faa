package main

import (
	"os"

	"github.com/msto63/cmdsys/cmd/cmdsys/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
