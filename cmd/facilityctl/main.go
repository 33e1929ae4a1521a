package main

import (
	"os"

	"github.com/facility-finder/cmd/facilityctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
