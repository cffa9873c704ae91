package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/loto-lang/loto/frontend"
)

type NewCmd struct {
	Name string `arg:"" required:"" help:"Name of the new project."`
}

const mainLotoContent = `# main.loto
def main
  print "Hello, world!"
end

main
`

func (n *NewCmd) Run() error {
	projectDir := n.Name
	if _, err := os.Stat(projectDir); err == nil {
		return fmt.Errorf("%s already exists", projectDir)
	}
	if err := os.MkdirAll(filepath.Join(projectDir, "src"), 0755); err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Join(projectDir, ".gitignore"), []byte("out/\n"), 0644); err != nil {
		return err
	}

	tomlContent, err := frontend.NewLotoToml(filepath.Base(n.Name))
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(projectDir, frontend.ManifestName), []byte(tomlContent), 0644); err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Join(projectDir, "src", "main.loto"), []byte(mainLotoContent), 0644); err != nil {
		return err
	}

	fmt.Printf("Created %s\n", projectDir)
	return nil
}
