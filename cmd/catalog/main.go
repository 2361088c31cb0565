package main

import (
	"os"

	"github.com/ChintyaPuja/technical/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
