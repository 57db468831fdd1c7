package main

import (
	"os"

	"github.com/grovetools/mantra/cli"
	"github.com/grovetools/mantra/cmd"
)

func main() {
	os.Exit(cli.Execute(cmd.NewContextRefreshRoot(nil), cli.NewErrorHandler(false)))
}
