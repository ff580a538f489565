package main

import (
	"os"

	"github.com/TsubasaBE/go-numedit/cmd/numfield/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
