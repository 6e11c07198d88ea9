package main

import (
	"os"

	"github.com/Shivrajsoni/portfolio/cmd/content/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
