package main

import (
	"context"
	"fmt"
	"log"
	"os"

	codegen "github.com/loto-lang/loto/backend"
	"github.com/loto-lang/loto/common"
	"github.com/loto-lang/loto/compiler"
)

type BuildCmd struct {
	Path     string `arg:"" optional:"" help:"Source file, or project directory holding loto.toml." default:"."`
	NoBanner bool   `help:"Omit the banner comment (single files only)." name:"no-banner"`
	Verbose  bool   `help:"Log every emitted file." short:"v"`
}

func (b *BuildCmd) Run() error {
	if isDir(b.Path) {
		return b.buildProject()
	}
	if err := checkSourceFile(b.Path); err != nil {
		return err
	}

	opts := codegen.DefaultOptions()
	opts.Banner = !b.NoBanner
	res, err := compiler.CompileFile(b.Path, opts)
	if err != nil {
		return err
	}
	target := common.ReplaceExt(b.Path, compiler.TargetExt)
	if err := compiler.WriteTarget(target, res.JS); err != nil {
		return err
	}
	fmt.Printf("✓ Built %s\n", target)
	return nil
}

func (b *BuildCmd) buildProject() error {
	proj, err := compiler.LoadProject(b.Path)
	if err != nil {
		return err
	}
	if b.Verbose {
		proj.Logger = log.New(os.Stderr, "loto: ", 0)
	}
	outputs, err := proj.Build(context.Background())
	if err != nil {
		return err
	}
	for _, out := range outputs {
		fmt.Printf("✓ Built %s\n", out.Target)
	}
	return nil
}
