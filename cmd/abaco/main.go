package main

import (
	"os"

	"github.com/TiagoK-777/hass-abaco-finance/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
