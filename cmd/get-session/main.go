package main

import (
	"os"

	"github.com/grovetools/mantra/cli"
	"github.com/grovetools/mantra/cmd"
	"github.com/grovetools/mantra/tui"
)

func main() {
	tui.InitializeColor()

	handler := cli.NewErrorHandler(false)
	handler.CreateHint = "create-session"
	os.Exit(cli.Execute(cmd.NewGetSessionRoot(nil), handler))
}
