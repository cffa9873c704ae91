package main

import (
	"fmt"
)

var Version = "dev" // set with -ldflags "-X main.Version=..."

type VersionCmd struct{}

func (v *VersionCmd) Run() error {
	fmt.Println("loto version:", Version)
	return nil
}
