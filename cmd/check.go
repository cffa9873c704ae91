package main

import (
	"context"
	"fmt"
	"os"

	"github.com/loto-lang/loto/compiler"
)

type CheckCmd struct {
	Path string `arg:"" optional:"" help:"Source file, or project directory holding loto.toml." default:"."`
}

func (c *CheckCmd) Run() error {
	if isDir(c.Path) {
		proj, err := compiler.LoadProject(c.Path)
		if err != nil {
			return err
		}
		if err := proj.Check(context.Background()); err != nil {
			return err
		}
		fmt.Println("ok")
		return nil
	}

	if err := checkSourceFile(c.Path); err != nil {
		return err
	}
	content, err := os.ReadFile(c.Path)
	if err != nil {
		return err
	}
	if _, err := compiler.Check(c.Path, string(content)); err != nil {
		return err
	}
	fmt.Println("ok")
	return nil
}
