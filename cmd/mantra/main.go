package main

import (
	"os"

	"github.com/grovetools/mantra/cli"
	"github.com/grovetools/mantra/cmd"
	"github.com/grovetools/mantra/tui"
)

func main() {
	tui.InitializeColor()
	os.Exit(cli.Execute(cmd.NewRootCmd(nil), cli.NewErrorHandler(false)))
}
