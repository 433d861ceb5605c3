package main

import (
	"os"

	"github.com/iliyamo/theatre-data-processor/internal/cli"
)

func main() {
	if err := cli.RootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
