package main

import (
	"github.com/cyascript/cyascript/cmd/cyas/cmd"
	"github.com/cyascript/cyascript/internal/cli"
)

func main() {
	if err := cmd.Execute(); err != nil {
		cli.ExitWithError(err)
	}
}
