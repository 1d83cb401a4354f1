package main

import (
	"os"

	"github.com/AdmajaBahari/lirik/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
