package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/loto-lang/loto/compiler"
)

// checkSourceFile validates a path given on the command line.
func checkSourceFile(path string) error {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("File %q not found", path)
	} else if err != nil {
		return err
	}
	if info.IsDir() || filepath.Ext(path) != compiler.SourceExt {
		return fmt.Errorf("File must have %s extension", compiler.SourceExt)
	}
	return nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
