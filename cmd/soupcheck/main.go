package main

import (
	"os"

	"github.com/soupx/soup/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
