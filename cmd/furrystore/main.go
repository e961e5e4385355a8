package main

import (
	"github.com/odvcencio/furry-store/cmd/furrystore/commands"
	"github.com/odvcencio/furry-store/internal/config"
)

func main() {
	if err := commands.Execute(); err != nil {
		config.Exitf("furrystore: %v", err)
	}
}
