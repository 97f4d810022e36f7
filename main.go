package main

import (
	"os"

	"github.com/kmensah/riddl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
