package main

import (
	"os"

	"tscdk/cmd"
	"tscdk/output"
)

func main() {
	if err := cmd.Execute(); err != nil {
		output.Error(err.Error())
		os.Exit(1)
	}
}
