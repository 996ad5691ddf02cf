package main

import (
	"os"

	"github.com/rmagpantay/aral/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
