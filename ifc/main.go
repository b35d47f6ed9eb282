package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/fincalc/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
)

func main() {
	// Shell completion for the command tree; a no-op outside of a
	// completion request.
	completion := &complete.Command{Sub: map[string]*complete.Command{}}
	for _, c := range cmd.Commands {
		completion.Sub[c.Name()] = &complete.Command{}
	}
	completion.Complete("ifc")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
