package main

import "github.com/alecthomas/kong"

type HelpCmd struct{}

func (h *HelpCmd) Run(ctx *kong.Context) error {
	return ctx.PrintUsage(false)
}
