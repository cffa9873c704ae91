package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("loto"),
		kong.Description("Loto to JavaScript compiler"),
		kong.UsageOnError(),
	)
	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

type CLI struct {
	Run     RunCmd     `cmd:"" help:"Compile a .loto file and run it with node."`
	Build   BuildCmd   `cmd:"" help:"Compile a .loto file, or every source of a project." aliases:"compile"`
	Check   CheckCmd   `cmd:"" help:"Lex and parse without writing output."`
	New     NewCmd     `cmd:"" help:"Create a new project."`
	Lsp     LspCmd     `cmd:"" help:"Run the LSP server."`
	Version VersionCmd `cmd:"" help:"Show version."`
	Help    HelpCmd    `cmd:"" help:"Show usage."`
}
