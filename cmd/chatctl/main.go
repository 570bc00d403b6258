package main

import (
	"os"

	"github.com/SteveRoss2023/KewlKidsOrgMobile-sub002/cmd/chatctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
