package main

import (
	"os"

	"github.com/valuelink-ops/ipaudit/internal/commands"
)

func main() {
	os.Exit(commands.Execute())
}
