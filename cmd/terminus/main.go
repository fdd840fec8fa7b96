package main

import (
	"os"

	"github.com/footprint-tools/terminus/internal/runner"
)

func main() {
	os.Exit(runner.New(runner.Options{}).Run(os.Args[1:]))
}
