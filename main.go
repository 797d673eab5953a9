package main

import (
	"os"

	"github.com/adityakr/prepdrill/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
