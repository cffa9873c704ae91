package main

import (
	"os"
	"os/exec"
	"strings"

	codegen "github.com/loto-lang/loto/backend"
	"github.com/loto-lang/loto/compiler"
)

type RunCmd struct {
	File string `arg:"" help:"Source file to run."`
	Node string `help:"JavaScript runtime that evaluates the output." default:"node"`
}

func (r *RunCmd) Run() error {
	if err := checkSourceFile(r.File); err != nil {
		return err
	}
	res, err := compiler.CompileFile(r.File, codegen.DefaultOptions())
	if err != nil {
		return err
	}

	var args []string
	if res.IsModule() {
		args = append(args, "--input-type=module")
	}
	cmd := exec.Command(r.Node, args...)
	cmd.Stdin = strings.NewReader(res.JS)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
