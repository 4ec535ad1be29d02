package main

import (
	"os"

	"github.com/Norgate-AV/batchprint/cmd"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
