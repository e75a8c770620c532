package main

import (
	"os"

	"github.com/meteorinca/cartesian/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
