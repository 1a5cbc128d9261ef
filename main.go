package main

import (
	"os"

	"github.com/morita/chartdrill/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
