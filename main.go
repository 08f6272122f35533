package main

import (
	"os"

	"github.com/harlequix/hamming84/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
