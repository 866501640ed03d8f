package main

import (
	"os"

	"github.com/msto63/libutils/cmd/libutils/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
