package main

import (
	"os"

	"phonectl/cmd/phonectl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
